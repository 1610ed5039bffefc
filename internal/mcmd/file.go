package mcmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gordian-engine/merkle"
	"github.com/gordian-engine/merkle/merklesha256"
)

// File chunks the file at path into chunkSize-byte blocks,
// builds a tree over the chunks,
// proves and verifies every chunk against the root,
// and writes the root digest to w.
// Progress goes to log.
func File(log *slog.Logger, w io.Writer, path string, chunkSize int) error {
	if chunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive (got %d)", chunkSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var chunks [][]byte
	for len(data) > chunkSize {
		chunks = append(chunks, data[:chunkSize])
		data = data[chunkSize:]
	}
	// The final chunk may be short; an empty file is one empty chunk.
	chunks = append(chunks, data)

	t := merkle.New(chunks, merkle.Config{Hasher: merklesha256.Hasher{}})
	log.Info(
		"built tree over file chunks",
		"path", path,
		"chunks", len(chunks),
		"root", t.RootHex(),
	)

	for i, c := range chunks {
		proof, ok := t.GenerateProof(c)
		if !ok {
			return fmt.Errorf("no proof generated for chunk %d", i)
		}

		if !merkle.VerifyProof(c, proof, t.RootHash(), merklesha256.Hasher{}) {
			return fmt.Errorf("chunk %d failed verification", i)
		}

		log.Debug("chunk verified", "chunk", i, "proof_len", len(proof))
	}

	fmt.Fprintln(w, t.RootHex())
	return nil
}
