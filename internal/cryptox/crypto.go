// Package cryptox encodes and verifies admin passwords.
//
// Two schemes exist. Argon2idScheme is the default and stores a salted
// one-way hash. LegacyBase64Scheme reproduces the reversible base64
// obfuscation used by earlier versions of the panel: it is NOT a security
// measure and exists only so demo data and old backups keep working.
//
// Because hashes are salted, stored values cannot be compared by encoding
// the candidate again; always go through VerifyPassword.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/siteadmin/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SchemeArgon2id     = "argon2id"
	SchemeLegacyBase64 = "base64"

	argon2idPrefix = "$argon2id$"

	// Upper bounds for parameters read back from stored hashes, 4x the
	// defaults. Stored hashes may come from an imported backup.
	maxArgon2Memory  = 4 * 64 * 1024
	maxArgon2Time    = 4
	maxArgon2Threads = 16
	maxArgon2KeyLen  = 128
)

var ErrUnknownScheme = errors.New("unknown password scheme")

// PasswordScheme turns a plain password into its stored form.
type PasswordScheme interface {
	Name() string
	Encode(password []byte) (string, error)
}

// SchemeByName returns the scheme registered under name.
func SchemeByName(name string) (PasswordScheme, error) {
	switch name {
	case "", SchemeArgon2id:
		return DefaultArgon2id(), nil
	case SchemeLegacyBase64:
		return LegacyBase64Scheme{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Argon2idScheme hashes with argon2.IDKey using a random salt per password.
type Argon2idScheme struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// DefaultArgon2id uses the same parameters as the vault master key derivation.
func DefaultArgon2id() Argon2idScheme {
	return Argon2idScheme{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32, SaltLen: 16}
}

func (s Argon2idScheme) Name() string { return SchemeArgon2id }

// Encode returns $argon2id$v=19$m=<mem>,t=<time>,p=<threads>$<salt>$<hash>
// with raw standard base64 salt and hash.
func (s Argon2idScheme) Encode(password []byte) (string, error) {
	salt := common.GenerateRandByteArray(s.SaltLen)
	hash := argon2.IDKey(password, salt, s.Time, s.Memory, s.Threads, s.KeyLen)
	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix, argon2.Version, s.Memory, s.Time, s.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

// LegacyBase64Scheme is the demo-only reversible encoding.
type LegacyBase64Scheme struct{}

func (LegacyBase64Scheme) Name() string { return SchemeLegacyBase64 }

func (LegacyBase64Scheme) Encode(password []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(password), nil
}

// VerifyPassword reports whether password matches the stored encoded value.
// Values starting with $argon2id$ are verified as hashes; anything else is
// treated as legacy base64.
func VerifyPassword(encoded string, password []byte) bool {
	if strings.HasPrefix(encoded, argon2idPrefix) {
		return verifyArgon2id(encoded, password)
	}
	candidate, _ := LegacyBase64Scheme{}.Encode(password)
	return subtle.ConstantTimeCompare([]byte(encoded), []byte(candidate)) == 1
}

func verifyArgon2id(encoded string, password []byte) bool {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}
	// argon2.IDKey panics on t=0 or p=0
	if time < 1 || time > maxArgon2Time ||
		threads < 1 || threads > maxArgon2Threads ||
		memory < 1 || memory > maxArgon2Memory {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 || len(want) > maxArgon2KeyLen {
		return false
	}

	got := argon2.IDKey(password, salt, time, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
