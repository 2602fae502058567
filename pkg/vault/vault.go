// Package vault stores payloads so they can be handed out as bytewords.
//
// Payloads are kept in a pebble database keyed by KSUID, which keeps
// listings in creation order.
package vault

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
	"github.com/ssargent/bytewords/pkg/bytewords"
)

// Errors
var (
	ErrNotFound     = &VaultError{"payload not found"}
	ErrEmptyPayload = &VaultError{"payload is empty"}
	ErrInvalidID    = &VaultError{"invalid payload id"}
)

// VaultError represents a vault error
type VaultError struct {
	Message string
}

func (e *VaultError) Error() string {
	return e.Message
}

// Vault is a pebble-backed payload store. It is safe for concurrent use.
type Vault struct {
	db *pebble.DB
}

// Open opens or creates a vault in the directory at path
func Open(path string) (*Vault, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open vault: %w", err)
	}
	return &Vault{db: db}, nil
}

// ParseID parses the string form of a payload id
func ParseID(s string) (ksuid.KSUID, error) {
	id, err := ksuid.Parse(s)
	if err != nil {
		return ksuid.Nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return id, nil
}

// Put stores payload under a new id. Empty payloads are rejected since
// they cannot be decoded from bytewords.
func (v *Vault) Put(payload []byte) (ksuid.KSUID, error) {
	if len(payload) == 0 {
		return ksuid.Nil, ErrEmptyPayload
	}

	id := ksuid.New()
	if err := v.db.Set(id.Bytes(), payload, pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to store payload: %w", err)
	}
	return id, nil
}

// Get returns the payload stored under id
func (v *Vault) Get(id ksuid.KSUID) ([]byte, error) {
	data, closer, err := v.db.Get(id.Bytes())
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	defer closer.Close()

	// data is only valid until closer is closed
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Encoded returns the payload stored under id rendered in style
func (v *Vault) Encoded(id ksuid.KSUID, style bytewords.Style) (string, error) {
	payload, err := v.Get(id)
	if err != nil {
		return "", err
	}
	return bytewords.Encode(style, payload), nil
}

// Delete removes the payload stored under id
func (v *Vault) Delete(id ksuid.KSUID) error {
	if _, err := v.Get(id); err != nil {
		return err
	}
	if err := v.db.Delete(id.Bytes(), pebble.Sync); err != nil {
		return fmt.Errorf("failed to delete payload: %w", err)
	}
	return nil
}

// List returns all payload ids, oldest first
func (v *Vault) List() ([]ksuid.KSUID, error) {
	iter, err := v.db.NewIter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list payloads: %w", err)
	}
	defer iter.Close()

	var ids []ksuid.KSUID
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			return nil, fmt.Errorf("corrupt payload key %x: %w", iter.Key(), err)
		}
		ids = append(ids, id)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to list payloads: %w", err)
	}
	return ids, nil
}

// Count returns the number of stored payloads
func (v *Vault) Count() (int, error) {
	ids, err := v.List()
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// Close closes the underlying database
func (v *Vault) Close() error {
	return v.db.Close()
}
