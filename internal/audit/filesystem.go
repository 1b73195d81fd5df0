package audit

import (
	"fmt"
	"time"

	"portal/internal/models"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const schemaVersion = "1"

var schemaVersionKey = []byte("schema_version")

// filesystemEntry is the document shape indexed in bleve.
type filesystemEntry struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone"`
	Outcome   string    `json:"outcome"`
}

// FilesystemClient implements ILogger using a local bleve index.
type FilesystemClient struct {
	index bleve.Index
}

// NewFilesystemClient opens (or creates) the bleve index at the configured
// directory.
func NewFilesystemClient(config models.FilesystemAuditConfiguration) ILogger {
	dir := config.Directory

	index, err := bleve.Open(dir)
	if err != nil {
		indexMapping := buildIndexMapping()
		index, err = bleve.New(dir, indexMapping)
		if err != nil {
			zap.L().Fatal("Failed to create filesystem audit index", zap.Error(err))
		}
		err = index.SetInternal(schemaVersionKey, []byte(schemaVersion))
		if err != nil {
			zap.L().Fatal("Failed to set schema version", zap.Error(err))
		}
		return &FilesystemClient{index: index}
	}

	storedVersion, err := index.GetInternal(schemaVersionKey)
	if err != nil {
		zap.L().Fatal("Failed to get schema version", zap.Error(err))
	}
	if string(storedVersion) != schemaVersion {
		zap.L().Fatal("Audit index schema version mismatch",
			zap.String("stored", string(storedVersion)),
			zap.String("expected", schemaVersion),
		)
	}

	return &FilesystemClient{index: index}
}

func buildIndexMapping() *mapping.IndexMappingImpl {
	keywordMapping := bleve.NewKeywordFieldMapping()
	dateMapping := bleve.NewDateTimeFieldMapping()
	textMapping := bleve.NewTextFieldMapping()

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("action", keywordMapping)
	docMapping.AddFieldMappingsAt("username", keywordMapping)
	docMapping.AddFieldMappingsAt("phone", keywordMapping)
	docMapping.AddFieldMappingsAt("outcome", keywordMapping)
	docMapping.AddFieldMappingsAt("timestamp", dateMapping)
	docMapping.AddFieldMappingsAt("message", textMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping

	return indexMapping
}

func (c *FilesystemClient) Close() error {
	return c.index.Close()
}

func (c *FilesystemClient) Send(entry Entry) error {
	timestamp := entry.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	doc := filesystemEntry{
		Message:   entry.Message,
		Timestamp: timestamp,
		Action:    entry.Action,
		Username:  entry.Username,
		Phone:     entry.Phone,
		Outcome:   entry.Outcome,
	}

	docID := uuid.New().String()
	if err := c.index.Index(docID, doc); err != nil {
		return fmt.Errorf("failed to index audit entry: %w", err)
	}

	return nil
}

func (c *FilesystemClient) Search(searchCriteria map[string][]string) ([]map[string]interface{}, error) {
	criteriaQuery := buildBleveQuery(searchCriteria)

	now := time.Now()
	thirtyDaysAgo := now.AddDate(0, 0, -30)
	dateQuery := bleve.NewDateRangeQuery(thirtyDaysAgo, now)
	dateQuery.SetField("timestamp")

	conjunction := bleve.NewConjunctionQuery(criteriaQuery, dateQuery)

	searchRequest := bleve.NewSearchRequest(conjunction)
	searchRequest.Size = 100
	searchRequest.SortBy([]string{"-timestamp"})
	searchRequest.Fields = []string{"*"}

	result, err := c.index.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to search audit index: %w", err)
	}

	var entries []map[string]interface{}
	for _, hit := range result.Hits {
		message, _ := hit.Fields["message"].(string)
		action, _ := hit.Fields["action"].(string)
		username, _ := hit.Fields["username"].(string)
		phone, _ := hit.Fields["phone"].(string)
		outcome, _ := hit.Fields["outcome"].(string)
		timestamp, _ := hit.Fields["timestamp"].(string)

		entries = append(entries, map[string]interface{}{
			"message":   message,
			"action":    action,
			"username":  username,
			"phone":     phone,
			"outcome":   outcome,
			"timestamp": timestamp,
		})
	}

	return entries, nil
}

func buildBleveQuery(searchCriteria map[string][]string) query.Query {
	var queries []query.Query

	for key, values := range searchCriteria {
		if len(values) == 1 {
			termQuery := bleve.NewTermQuery(values[0])
			termQuery.SetField(key)
			queries = append(queries, termQuery)
		} else if len(values) > 1 {
			var termQueries []query.Query
			for _, v := range values {
				tq := bleve.NewTermQuery(v)
				tq.SetField(key)
				termQueries = append(termQueries, tq)
			}
			disjunction := bleve.NewDisjunctionQuery(termQueries...)
			disjunction.SetMin(1)
			queries = append(queries, disjunction)
		}
	}

	if len(queries) == 0 {
		return bleve.NewMatchAllQuery()
	}

	if len(queries) == 1 {
		return queries[0]
	}

	return bleve.NewConjunctionQuery(queries...)
}
