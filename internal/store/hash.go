package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainComputation prefixes computation IDs. The version suffix leaves room
// for a future change of the hashed fields.
const DomainComputation = "mandelplane/computation/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ComputationID computes the content-addressed ID of a journal record.
func ComputationID(runID string, seq int64, kind string, input, output map[string]string) (string, error) {
	obj := map[string]any{
		"run_id": runID,
		"seq":    seq,
		"kind":   kind,
		"input":  input,
		"output": output,
	}

	canonical, err := marshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("ComputationID: failed to marshal: %w", err)
	}

	return hashWithDomain(DomainComputation, canonical), nil
}
