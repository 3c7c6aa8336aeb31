/*
Package server implements msgpack IPC for the suggestion engine.

The server operates on a request/response model over stdin/stdout: the
client writes one msgpack-encoded Request per message and reads one
response object back. Every message carries an ID field the response
echoes, so clients can pipeline requests.

A completion request looks like:

	{"id": "req_001", "cmd": "complete", "p": "app"}

and comes back ranked by popularity:

	{"id": "req_001", "s": [{"w": "apple", "f": 5}, {"w": "app", "f": 3}], "c": 2, "t": 40}

When no stored word has the prefix, the server falls back to edit
distance correction and flags the response:

	{"id": "req_002", "s": [{"w": "apple", "d": 1}], "c": 1, "x": true, "t": 210}

Words are added at runtime with {"cmd": "add", "w": "apple", "f": 5};
"correct" forces the fallback path, "list" dumps the vocabulary sorted
by spelling, and "health" answers with a status object. Failures come
back as {"id", "e", "c"} error objects, never as a closed stream.
*/
package server

// Request is the single inbound message shape. Cmd selects the
// operation; fields unused by a command stay empty on the wire.
type Request struct {
	ID         string `msgpack:"id"`
	Cmd        string `msgpack:"cmd"`
	Prefix     string `msgpack:"p,omitempty"`
	Word       string `msgpack:"w,omitempty"`
	Popularity int    `msgpack:"f,omitempty"`
	Limit      int    `msgpack:"l,omitempty"`
}

// WireSuggestion is one ranked entry in a SuggestResponse.
type WireSuggestion struct {
	Word       string `msgpack:"w"`
	Distance   int    `msgpack:"d,omitempty"`
	Popularity int    `msgpack:"f,omitempty"`
}

// SuggestResponse answers "complete" and "correct". Corrected is set
// when the results came from the edit-distance fallback rather than the
// prefix walk.
type SuggestResponse struct {
	ID          string           `msgpack:"id"`
	Suggestions []WireSuggestion `msgpack:"s"`
	Count       int              `msgpack:"c"`
	Corrected   bool             `msgpack:"x,omitempty"`
	TookMicros  int64            `msgpack:"t"`
}

// WordEntry is one stored (word, popularity) pair in a ListResponse.
type WordEntry struct {
	Word       string `msgpack:"w"`
	Popularity int    `msgpack:"f"`
}

// ListResponse answers "list" with the vocabulary sorted by spelling.
type ListResponse struct {
	ID    string      `msgpack:"id"`
	Words []WordEntry `msgpack:"words"`
	Count int         `msgpack:"c"`
}

// StatusResponse answers "add" and "health".
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ErrorResponse reports a rejected request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
