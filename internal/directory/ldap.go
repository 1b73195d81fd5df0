package directory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portal/internal/models"

	"github.com/go-ldap/ldap/v3"
)

// ErrAccountNotFound means the directory answered but holds no record for the
// account name. It is distinct from transport or bind failures.
var ErrAccountNotFound = errors.New("account not found in directory")

const employeeIDAttribute = "employeeID"

// IDirectory resolves an account name to the internal employee identifier.
type IDirectory interface {
	LookupEmployeeID(ctx context.Context, username string) (string, error)
}

// LDAPDirectory talks to the enterprise directory over LDAP with a service
// account. A fresh connection is dialed per lookup; lookups are rare enough
// that pooling is not worth the bind-state bookkeeping.
type LDAPDirectory struct {
	config models.DirectoryConfiguration
}

func NewLDAPDirectory(config models.DirectoryConfiguration) *LDAPDirectory {
	return &LDAPDirectory{config: config}
}

func (d *LDAPDirectory) LookupEmployeeID(_ context.Context, username string) (string, error) {
	fqdn := strings.ToLower(d.config.FQDN)

	conn, err := ldap.DialURL("ldap://" + fqdn)
	if err != nil {
		return "", fmt.Errorf("failed to reach directory: %w", err)
	}
	defer conn.Close()

	domain := strings.Split(fqdn, ".")[0]
	if err = conn.Bind(domain+"\\"+d.config.BindUser, d.config.BindPassword); err != nil {
		return "", fmt.Errorf("directory bind rejected: %w", err)
	}

	searchRequest := ldap.NewSearchRequest(
		baseDN(fqdn),
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		1, 0, false,
		fmt.Sprintf("(sAMAccountName=%s)", ldap.EscapeFilter(username)),
		[]string{employeeIDAttribute},
		nil,
	)

	result, err := conn.Search(searchRequest)
	if err != nil {
		if ldap.IsErrorWithCode(err, ldap.LDAPResultNoSuchObject) {
			return "", ErrAccountNotFound
		}
		return "", fmt.Errorf("directory search failed: %w", err)
	}

	if len(result.Entries) == 0 {
		return "", ErrAccountNotFound
	}

	employeeID := result.Entries[0].GetAttributeValue(employeeIDAttribute)
	if employeeID == "" {
		return "", ErrAccountNotFound
	}

	return employeeID, nil
}

// baseDN derives the search base from the directory FQDN
// (corp.example.com -> dc=corp,dc=example,dc=com).
func baseDN(fqdn string) string {
	labels := strings.Split(fqdn, ".")
	components := make([]string, 0, len(labels))
	for _, label := range labels {
		components = append(components, "dc="+label)
	}
	return strings.Join(components, ",")
}
