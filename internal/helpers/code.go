package helpers

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"

	"portal/internal/configuration"

	"github.com/alexedwards/argon2id"
)

// GenerateChallengeCode returns a uniformly random numeric challenge in
// [100000, 999999], formatted as the six digits sent over SMS.
func GenerateChallengeCode() (string, error) {
	span := int64(configuration.ChallengeCodeMax - configuration.ChallengeCodeMin + 1)
	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+configuration.ChallengeCodeMin, 10), nil
}

// CreateHash hashes a challenge code for storage in the conversation.
func CreateHash(code string) (string, error) {
	argonParams := argon2id.Params{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  32,
		KeyLength:   32,
	}
	hash, err := argon2id.CreateHash(code, &argonParams)
	if err != nil {
		return "", errors.New("can not hash challenge code")
	}

	return hash, nil
}
