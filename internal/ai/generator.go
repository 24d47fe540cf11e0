package ai

import "context"

// Stream is a sequential, non-restartable stream of text chunks. Recv
// returns io.EOF after the final chunk.
type Stream interface {
	Recv() (string, error)
	Close() error
}

// Generator produces a chunk stream for a prompt.
type Generator interface {
	GenerateStream(ctx context.Context, prompt string) (Stream, error)
}
