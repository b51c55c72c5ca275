package rag

import "omnirag/internal/docstore"

// BaseSystemInstruction is the default persona for generation. The user
// may override it from the settings surface; an empty override falls
// back to this.
const BaseSystemInstruction = `You are an expert Knowledge Assistant named OmniRAG.
Your goal is to answer user queries accurately based ONLY on the provided context from the knowledge base.
If the answer is not in the context, politely state that you do not have that information in your knowledge base.
Maintain a professional, helpful, and concise tone.
Avoid hallucinations. Always cite the specific document title if possible when answering.
`

// GenerationErrorText is returned to the user when the generation
// service fails for any reason (network, auth, quota, malformed
// response). The failure never propagates past the engine.
const GenerationErrorText = "Error generating response. Please check your API key or network connection."

// EmptyGenerationText substitutes for an empty generation body.
const EmptyGenerationText = "I apologize, but I couldn't generate a response based on the available context."

// AnswerRequest carries one retrieval-plus-generation cycle's inputs.
// Documents is the full collection snapshot; the engine narrows it.
type AnswerRequest struct {
	Query             string
	Documents         []docstore.Document
	SystemInstruction string
	Limit             int
}

// AnswerResponse is the outcome of one exchange.
type AnswerResponse struct {
	// Text is the generated answer, or one of the fixed substitute
	// strings when generation failed or produced nothing.
	Text string
	// RetrievedContext lists the titles of the documents sent as
	// context, in selection order (highest relevance first). Empty when
	// generation failed.
	RetrievedContext []string
	// Fallback reports whether context stuffing was used because no
	// document scored above zero.
	Fallback bool
	// LatencyMs is the wall time of the full cycle.
	LatencyMs int64
}
