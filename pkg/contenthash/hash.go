// Package contenthash defines the canonical byte representations and SHA-256
// addressing used for every artifact type. The hex digest is the logical key
// that makes the pipeline idempotent.
package contenthash

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ShortHashLen is the prefix length used for human-facing lookups.
const ShortHashLen = 12

// Text returns the SHA-256 hex digest of s.
func Text(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// CanonicalOptions renders model options as canonical JSON with sorted keys.
// encoding/json sorts map keys, which is exactly the canonical form.
func CanonicalOptions(options map[string]interface{}) (string, error) {
	if options == nil {
		options = map[string]interface{}{}
	}
	b, err := json.Marshal(options)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize options: %w", err)
	}
	return string(b), nil
}

// ModelConfig hashes the canonical form of a model configuration:
// {"model": <model>, "options_json": <canonical options JSON>}.
func ModelConfig(model, optionsJSON string) string {
	b, _ := json.Marshal(map[string]string{
		"model":        model,
		"options_json": optionsJSON,
	})
	return Text(string(b))
}

// Short returns the human-facing prefix of a full hex digest.
func Short(hash string) string {
	if len(hash) <= ShortHashLen {
		return hash
	}
	return hash[:ShortHashLen]
}
