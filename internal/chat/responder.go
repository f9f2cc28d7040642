package chat

import "context"

// Responder produces a reply to a visitor message, grounded in the portfolio
// knowledge base. Exactly one implementation is active at a time, chosen by
// configuration: the keyword matcher or the LLM-backed client.
type Responder interface {
	Reply(ctx context.Context, message string) (string, error)
}
