package api

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ssargent/bytewords/pkg/bytewords"
	"github.com/ssargent/bytewords/pkg/crc"
	"github.com/ssargent/bytewords/pkg/vault"
	"go.uber.org/zap"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 << 20

// Server holds the API server state
type Server struct {
	store   PayloadStore
	codec   *bytewords.Codec
	config  ServerConfig
	metrics *Metrics
	logger  *zap.Logger
}

// NewServer creates a new API server. store may be nil, in which case the
// payload routes are not mounted.
func NewServer(store PayloadStore, config ServerConfig, metrics *Metrics) *Server {
	codec := config.Codec
	if codec == nil {
		codec = bytewords.NewCodec()
	}
	if !config.DefaultStyle.Valid() {
		config.DefaultStyle = bytewords.Standard
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}

	return &Server{
		store:   store,
		codec:   codec,
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleEncode godoc
//
//	@Summary		Encode a payload
//	@Description	Render hex or base64 data as bytewords with a CRC-32 checksum
//	@Tags			codec
//	@Accept			json
//	@Produce		json
//	@Param			request	body		EncodeRequest	true	"Payload to encode"
//	@Success		200		{object}	EncodeResponse
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/encode [post]
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req EncodeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	style, err := s.resolveStyle(req.Style)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := decodeBinary(req.Data, req.Encoding)
	if err != nil {
		s.metrics.RecordCodecOperation("encode", style.String(), false, 0)
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	text := s.codec.Encode(style, data)
	s.metrics.RecordCodecOperation("encode", style.String(), true, len(data))

	sendSuccess(w, EncodeResponse{
		Style: style.String(),
		Text:  text,
		Words: len(data) + crc.Size,
	})
}

// handleDecode godoc
//
//	@Summary		Decode bytewords
//	@Description	Decode bytewords text and verify its checksum
//	@Tags			codec
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DecodeRequest	true	"Text to decode"
//	@Success		200		{object}	DecodeResponse
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/decode [post]
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	style, err := s.resolveStyle(req.Style)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	encoding, err := resolveEncoding(req.Encoding)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := s.codec.Decode(style, req.Text)
	if err != nil {
		s.metrics.RecordCodecOperation("decode", style.String(), false, 0)
		s.logger.Debug("decode rejected", zap.String("style", style.String()), zap.Error(err))
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.metrics.RecordCodecOperation("decode", style.String(), true, len(data))

	sendSuccess(w, DecodeResponse{
		Data:     encodeBinary(data, encoding),
		Encoding: encoding,
		Length:   len(data),
	})
}

// handleListWords godoc
//
//	@Summary		List the word table
//	@Tags			words
//	@Produce		json
//	@Success		200	{array}	WordEntry
//	@Security		ApiKeyAuth
//	@Router			/words [get]
func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	entries := make([]WordEntry, 0, 256)
	for i := 0; i < 256; i++ {
		entries = append(entries, NewWordEntry(byte(i)))
	}
	sendSuccess(w, entries)
}

// handleGetWord godoc
//
//	@Summary		Look up one byte value
//	@Description	Accepts decimal (128) or hex (0x80) byte values
//	@Tags			words
//	@Produce		json
//	@Param			value	path		string	true	"Byte value"
//	@Success		200		{object}	WordEntry
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/words/{value} [get]
func (s *Server) handleGetWord(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "value")
	v, inRange, err := parseByteValue(raw)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !inRange {
		sendError(w, fmt.Sprintf("Byte value %s out of range", raw), http.StatusNotFound)
		return
	}
	sendSuccess(w, NewWordEntry(v))
}

// parseByteValue parses a decimal or 0x-prefixed hex number. Well-formed
// numbers outside 0-255, negative ones included, report inRange false.
func parseByteValue(raw string) (v byte, inRange bool, err error) {
	s := strings.TrimPrefix(raw, "-")
	negative := len(s) != len(raw)

	base := 10
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s, base = s[2:], 16
	}
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, false, fmt.Errorf("Invalid byte value %q", raw)
	}

	n, err := strconv.ParseUint(s, base, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, false, nil
	case err != nil:
		return 0, false, fmt.Errorf("Invalid byte value %q", raw)
	case negative || n > 0xff:
		return 0, false, nil
	}
	return byte(n), true, nil
}

// handlePutPayload godoc
//
//	@Summary		Store a payload
//	@Tags			vault
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PayloadRequest	true	"Payload"
//	@Success		200		{object}	PayloadResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/payloads [post]
func (s *Server) handlePutPayload(w http.ResponseWriter, r *http.Request) {
	var req PayloadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	style, err := s.resolveStyle(req.Style)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := decodeBinary(req.Data, req.Encoding)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := s.store.Put(data)
	if err != nil {
		s.metrics.RecordVaultOperation("put", false)
		s.logger.Error("vault put failed", zap.Error(err))
		sendError(w, "Failed to store payload", http.StatusInternalServerError)
		return
	}
	s.metrics.RecordVaultOperation("put", true)
	s.refreshVaultStats()

	sendSuccess(w, PayloadResponse{
		ID:     id.String(),
		Style:  style.String(),
		Text:   s.codec.Encode(style, data),
		Length: len(data),
	})
}

// handleGetPayload godoc
//
//	@Summary		Fetch a stored payload as bytewords
//	@Tags			vault
//	@Produce		json
//	@Param			id		path		string	true	"Payload id"
//	@Param			style	query		string	false	"standard, uri or minimal"
//	@Success		200		{object}	PayloadResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/payloads/{id} [get]
func (s *Server) handleGetPayload(w http.ResponseWriter, r *http.Request) {
	id, err := vault.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	style, err := s.resolveStyle(r.URL.Query().Get("style"))
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := s.store.Get(id)
	if err != nil {
		s.metrics.RecordVaultOperation("get", false)
		s.sendVaultError(w, err)
		return
	}
	s.metrics.RecordVaultOperation("get", true)

	sendSuccess(w, PayloadResponse{
		ID:     id.String(),
		Style:  style.String(),
		Text:   s.codec.Encode(style, data),
		Length: len(data),
	})
}

// handleDeletePayload godoc
//
//	@Summary		Delete a stored payload
//	@Tags			vault
//	@Produce		json
//	@Param			id	path		string	true	"Payload id"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/payloads/{id} [delete]
func (s *Server) handleDeletePayload(w http.ResponseWriter, r *http.Request) {
	id, err := vault.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.store.Delete(id); err != nil {
		s.metrics.RecordVaultOperation("delete", false)
		s.sendVaultError(w, err)
		return
	}
	s.metrics.RecordVaultOperation("delete", true)
	s.refreshVaultStats()

	sendSuccess(w, map[string]string{"id": id.String(), "status": "deleted"})
}

// handleListPayloads godoc
//
//	@Summary		List stored payload ids
//	@Tags			vault
//	@Produce		json
//	@Success		200	{array}	string
//	@Security		ApiKeyAuth
//	@Router			/payloads [get]
func (s *Server) handleListPayloads(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List()
	if err != nil {
		s.metrics.RecordVaultOperation("list", false)
		s.logger.Error("vault list failed", zap.Error(err))
		sendError(w, "Failed to list payloads", http.StatusInternalServerError)
		return
	}
	s.metrics.RecordVaultOperation("list", true)

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	sendSuccess(w, out)
}

func (s *Server) sendVaultError(w http.ResponseWriter, err error) {
	if errors.Is(err, vault.ErrNotFound) {
		sendError(w, "Payload not found", http.StatusNotFound)
		return
	}
	s.logger.Error("vault operation failed", zap.Error(err))
	sendError(w, "Vault operation failed", http.StatusInternalServerError)
}

func (s *Server) refreshVaultStats() {
	count, err := s.store.Count()
	if err != nil {
		s.logger.Warn("failed to count vault payloads", zap.Error(err))
		return
	}
	s.metrics.UpdateVaultStats(count)
}

// resolveStyle parses a style name, falling back to the server default
func (s *Server) resolveStyle(name string) (bytewords.Style, error) {
	if strings.TrimSpace(name) == "" {
		return s.config.DefaultStyle, nil
	}
	return bytewords.ParseStyle(name)
}

// NewWordEntry describes the table row for b
func NewWordEntry(b byte) WordEntry {
	return WordEntry{
		Value:   int(b),
		Hex:     fmt.Sprintf("%02x", b),
		Word:    bytewords.Word(b),
		Minimal: bytewords.MinimalWord(b),
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("Invalid JSON in request body: %v", err)
	}
	return nil
}

func resolveEncoding(encoding string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", EncodingHex:
		return EncodingHex, nil
	case EncodingBase64:
		return EncodingBase64, nil
	}
	return "", fmt.Errorf("Unsupported encoding %q", encoding)
}

// decodeBinary decodes request data. Empty payloads are rejected since
// their bytewords cannot be decoded again.
func decodeBinary(data, encoding string) ([]byte, error) {
	enc, err := resolveEncoding(encoding)
	if err != nil {
		return nil, err
	}

	var out []byte
	switch enc {
	case EncodingBase64:
		out, err = base64.StdEncoding.DecodeString(data)
	default:
		out, err = hex.DecodeString(strings.TrimPrefix(data, "0x"))
	}
	if err != nil {
		return nil, fmt.Errorf("Invalid %s data: %v", enc, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("Data is required")
	}
	return out, nil
}

func encodeBinary(data []byte, encoding string) string {
	if encoding == EncodingBase64 {
		return base64.StdEncoding.EncodeToString(data)
	}
	return hex.EncodeToString(data)
}
