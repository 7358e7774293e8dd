package kv

// Simple JSON protocol for the store daemon over a Unix domain socket.
// One request -> one response using json.Encoder/Decoder per connection.

type Request struct {
	Op     string `json:"op"` // "get" | "set" | "delete" | "keys"
	Key    string `json:"key,omitempty"`
	Value  []byte `json:"value,omitempty"`
	Prefix string `json:"prefix,omitempty"`
}

type Response struct {
	OK    bool     `json:"ok"`
	Value []byte   `json:"value,omitempty"`
	Keys  []string `json:"keys,omitempty"`
	Error string   `json:"error,omitempty"`
}
