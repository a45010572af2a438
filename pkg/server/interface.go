/*
Package server implements msgpack IPC for word prediction.

Clients write msgpack maps to the server's stdin and read msgpack maps from
its stdout. Every message carries an ID that is echoed in the reply.
Messages are processed synchronously, one reply per request.

# IPC

A completion request names the typed prefix and an optional limit:

	{"id": "req_001", "p": "ca", "l": 5}

The reply ranks the vocabulary words that start with the prefix by their
model score, best first. Rank starts at 1, "t" is the handling time in
microseconds:

	{"id": "req_001", "s": [{"w": "cat", "r": 1, "sc": 0.8934}], "c": 1, "t": 87}

Requests carrying an action manage the server instead:

	{"id": "info_1", "action": "get_info"}
	{"id": "cfg_1", "action": "get_config"}
	{"id": "cfg_2", "action": "set_config", "max_limit": 20, "enable_filter": false}

Bad requests get an error reply and the loop continues:

	{"id": "req_002", "e": "prefix exceeds maximum length of 60", "c": 400}

The loop ends at EOF on stdin.
*/
package server

// Error codes sent in CompletionError.
const (
	CodeBadRequest    = 400
	CodeUnknownAction = 404
	CodeInternal      = 500
)

// CompletionRequest - minimal completion request
type CompletionRequest struct {
	ID     string `msgpack:"id"`
	Prefix string `msgpack:"p"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word  string  `msgpack:"w"`
	Rank  uint16  `msgpack:"r"`
	Score float64 `msgpack:"sc"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// ActionRequest - management request. The optional fields are only read by
// "set_config".
type ActionRequest struct {
	ID           string `msgpack:"id"`
	Action       string `msgpack:"action"`
	MaxLimit     *int   `msgpack:"max_limit,omitempty"`
	MinPrefix    *int   `msgpack:"min_prefix,omitempty"`
	MaxPrefix    *int   `msgpack:"max_prefix,omitempty"`
	EnableFilter *bool  `msgpack:"enable_filter,omitempty"`
}

// InfoResponse - model statistics for "get_info"
type InfoResponse struct {
	ID           string `msgpack:"id"`
	Status       string `msgpack:"status"`
	Order        int    `msgpack:"order"`
	Vocabulary   int    `msgpack:"vocabulary"`
	Tokens       int    `msgpack:"tokens"`
	StreamLen    int    `msgpack:"stream_len"`
	CacheEntries int    `msgpack:"cache_entries"`
	CacheHits    int    `msgpack:"cache_hits"`
	Requests     int    `msgpack:"requests"`
}

// ConfigResponse - server settings for "get_config" and "set_config"
type ConfigResponse struct {
	ID           string `msgpack:"id"`
	Status       string `msgpack:"status"`
	MaxLimit     int    `msgpack:"max_limit"`
	MinPrefix    int    `msgpack:"min_prefix"`
	MaxPrefix    int    `msgpack:"max_prefix"`
	EnableFilter bool   `msgpack:"enable_filter"`
	Saved        bool   `msgpack:"saved"`
}

// CompletionError holds basic error information for failed requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// envelope is decoded first to route a message.
type envelope struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`
}
