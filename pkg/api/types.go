package api

import (
	"github.com/segmentio/ksuid"
	"github.com/ssargent/bytewords/pkg/bytewords"
	"go.uber.org/zap"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Binary data encodings accepted in request and response bodies
const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
)

// EncodeRequest asks for a payload to be rendered as bytewords
type EncodeRequest struct {
	Style    string `json:"style,omitempty"`
	Data     string `json:"data"`
	Encoding string `json:"encoding,omitempty"`
}

// EncodeResponse holds rendered bytewords
type EncodeResponse struct {
	Style string `json:"style"`
	Text  string `json:"text"`
	Words int    `json:"words"`
}

// DecodeRequest asks for bytewords text to be decoded
type DecodeRequest struct {
	Style    string `json:"style,omitempty"`
	Text     string `json:"text"`
	Encoding string `json:"encoding,omitempty"`
}

// DecodeResponse holds a decoded payload
type DecodeResponse struct {
	Data     string `json:"data"`
	Encoding string `json:"encoding"`
	Length   int    `json:"length"`
}

// WordEntry describes one row of the word table
type WordEntry struct {
	Value   int    `json:"value"`
	Hex     string `json:"hex"`
	Word    string `json:"word"`
	Minimal string `json:"minimal"`
}

// PayloadRequest stores a payload in the vault
type PayloadRequest struct {
	Style    string `json:"style,omitempty"`
	Data     string `json:"data"`
	Encoding string `json:"encoding,omitempty"`
}

// PayloadResponse describes a stored payload
type PayloadResponse struct {
	ID     string `json:"id"`
	Style  string `json:"style"`
	Text   string `json:"text"`
	Length int    `json:"length"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port         int
	Bind         string
	APIKey       string
	DefaultStyle bytewords.Style
	Codec        *bytewords.Codec // nil means a strict codec
	Logger       *zap.Logger      // nil means no logging
}

// PayloadStore defines the vault operations used by the API
type PayloadStore interface {
	Put(payload []byte) (ksuid.KSUID, error)
	Get(id ksuid.KSUID) ([]byte, error)
	Delete(id ksuid.KSUID) error
	List() ([]ksuid.KSUID, error)
	Count() (int, error)
}
