package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portal/internal/directory"
	"portal/internal/erp"
	"portal/internal/models"
)

// ErrDirectory wraps directory transport and bind failures. ErrRecordLookup
// wraps enterprise record fetch and parse failures. Both are operator-facing;
// neither reaches the end user verbatim.
var (
	ErrDirectory    = errors.New("directory error")
	ErrRecordLookup = errors.New("record lookup error")
)

// Verifier cross-checks a claimed identity against the directory and the
// enterprise record system.
type Verifier struct {
	Directory directory.IDirectory
	Records   erp.IEmployeeRecords
}

// NormalizeUsername strips realm prefixes (REALM\user) and domain suffixes
// (user@domain), keeping the bare account name.
func NormalizeUsername(raw string) string {
	username := strings.SplitN(raw, "@", 2)[0]
	if idx := strings.LastIndex(username, "\\"); idx >= 0 {
		username = username[idx+1:]
	}
	return username
}

// Verify reports whether the claimed phone number matches the registered one
// on record for the username. An unknown account is a negative verification,
// not an error. Matching is exact string equality on the normalized numbers.
func (v *Verifier) Verify(ctx context.Context, username string, claimedPhone string) (bool, error) {
	record, found, err := v.resolve(ctx, NormalizeUsername(username))
	if err != nil || !found {
		return false, err
	}
	return record.RegisteredPhone == claimedPhone, nil
}

// resolve looks the account up in both authoritative sources. The record is
// transient; it is never persisted or surfaced.
func (v *Verifier) resolve(
	ctx context.Context,
	username string,
) (models.IdentityRecord, bool, error) {
	employeeID, err := v.Directory.LookupEmployeeID(ctx, username)
	if err != nil {
		if errors.Is(err, directory.ErrAccountNotFound) {
			return models.IdentityRecord{}, false, nil
		}
		return models.IdentityRecord{}, false, fmt.Errorf("%w: %v", ErrDirectory, err)
	}

	registeredPhone, err := v.Records.GetRegisteredPhone(ctx, employeeID)
	if err != nil {
		return models.IdentityRecord{}, false, fmt.Errorf("%w: %v", ErrRecordLookup, err)
	}

	return models.IdentityRecord{
		EmployeeID:      employeeID,
		RegisteredPhone: registeredPhone,
	}, true, nil
}
