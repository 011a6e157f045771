// Package editor is the admin-side library for editing the content documents.
// An Editor holds one document as an edit buffer, hydrates it from the API,
// falls back to a locally stored copy when the API is unreachable and saves
// it back whole or one section at a time.
package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
)

var (
	// ErrLocked is returned by every mutation while the editor is locked
	ErrLocked = errors.New("editor is locked")
	// ErrUnknownDomain is returned by New for an unregistered document
	ErrUnknownDomain = errors.New("unknown content domain")
	// ErrUnknownSection is returned for a section the document does not have
	ErrUnknownSection = errors.New("unknown document section")
	// ErrItemNotFound is returned when no list entry matches
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidMove is returned when a reorder would leave the list bounds
	ErrInvalidMove = errors.New("item cannot move further")
	// ErrNoClient is returned by network operations on an offline editor
	ErrNoClient = errors.New("editor has no API client")
)

// Options configures an Editor. Every field is optional.
type Options struct {
	Client   *Client
	Store    KVStore
	Notifier *Notifier
	Logger   *zap.Logger
	// CheckVersion sends If-Match on saves so a concurrent edit is
	// rejected instead of overwritten
	CheckVersion bool
	// Locked starts the editor in read-only mode
	Locked bool
}

// Editor is the edit buffer of one content document. It is owned by a
// single goroutine.
type Editor struct {
	domain       content.Domain
	client       *Client
	store        KVStore
	notifier     *Notifier
	logger       *zap.Logger
	checkVersion bool

	doc     *content.Object
	version int64
	locked  bool
	dirty   bool
}

// New creates an editor holding the bundled default document
func New(domain string, opts Options) (*Editor, error) {
	d, ok := content.Lookup(domain)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDomain, domain)
	}
	if opts.Store == nil {
		opts.Store = NewMemoryStore()
	}
	if opts.Notifier == nil {
		opts.Notifier = NewNotifier(DefaultNotificationTTL)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	doc := content.NewObject()
	if def := content.Default(domain); def != nil {
		parsed, err := content.ParseObject(def)
		if err != nil {
			return nil, fmt.Errorf("parsing default %s document: %w", domain, err)
		}
		doc = parsed
	}

	return &Editor{
		domain:       d,
		client:       opts.Client,
		store:        opts.Store,
		notifier:     opts.Notifier,
		logger:       opts.Logger.With(zap.String("domain", domain)),
		checkVersion: opts.CheckVersion,
		doc:          doc,
		version:      service.AnyVersion,
		locked:       opts.Locked,
	}, nil
}

// Domain returns the document name
func (e *Editor) Domain() string { return e.domain.Name }

// Version returns the server version of the buffer, or service.AnyVersion
// when the buffer did not come from the server
func (e *Editor) Version() int64 { return e.version }

// Dirty reports unsaved changes
func (e *Editor) Dirty() bool { return e.dirty }

// Notifier returns the editor's notification sink
func (e *Editor) Notifier() *Notifier { return e.notifier }

// Data returns the buffer as compact JSON
func (e *Editor) Data() json.RawMessage { return e.doc.Bytes() }

// Decode unmarshals the buffer into out
func (e *Editor) Decode(out any) error {
	return json.Unmarshal(e.Data(), out)
}

// Field returns the raw value at a dotted path such as "hero.title"
func (e *Editor) Field(path string) (json.RawMessage, bool) {
	raw, ok, err := getPath(e.doc, path)
	if err != nil {
		return nil, false
	}
	return raw, ok
}

func (e *Editor) Locked() bool { return e.locked }
func (e *Editor) Lock()        { e.locked = true }
func (e *Editor) Unlock()      { e.locked = false }

// ToggleLock flips the lock and returns the new state
func (e *Editor) ToggleLock() bool {
	e.locked = !e.locked
	return e.locked
}

// SetField replaces the value at path. A top-level name merges one member
// into the document; a dotted path replaces a nested member.
func (e *Editor) SetField(path string, value any) error {
	if e.locked {
		return ErrLocked
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := setPath(e.doc, splitPath(path), raw); err != nil {
		return err
	}
	e.dirty = true
	return nil
}

// SetItemField replaces field on the element at index of the list at path
func (e *Editor) SetItemField(list string, index int, field string, value any) error {
	if e.locked {
		return ErrLocked
	}
	items, err := e.rawList(list)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(items) {
		return ErrItemNotFound
	}
	item, err := content.ParseObject(items[index])
	if err != nil {
		return fmt.Errorf("%s[%d]: %w", list, index, err)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", field, err)
	}
	item.Set(field, raw)
	items[index] = item.Bytes()
	return e.SetField(list, items)
}

func (e *Editor) rawList(path string) ([]json.RawMessage, error) {
	raw, ok, err := getPath(e.doc, path)
	if err != nil {
		return nil, err
	}
	if !ok || isNull(raw) {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%s is not a list: %w", path, err)
	}
	return items, nil
}

// Hydrate replaces the buffer with the server's document. When the server
// cannot be reached the stored copy is used, and when there is none the
// buffer keeps its current content. The fetch error is returned either way.
func (e *Editor) Hydrate(ctx context.Context) error {
	if e.client == nil {
		return e.hydrateFromStore(ctx, ErrNoClient)
	}
	remote, err := e.client.GetDocument(ctx, e.domain.Name)
	if err == nil {
		err = e.load(remote.Data, remote.Version)
	}
	if err != nil {
		return e.hydrateFromStore(ctx, err)
	}
	e.logger.Debug("Document hydrated", zap.Int64("version", e.version))
	e.remember(ctx)
	return nil
}

func (e *Editor) hydrateFromStore(ctx context.Context, cause error) error {
	e.logger.Warn("Failed to fetch document", zap.Error(cause))

	saved, ok, err := e.store.Get(ctx, e.domain.StorageKey)
	if err != nil {
		e.logger.Warn("Failed to read stored document", zap.Error(err))
	}
	if ok {
		if err := e.load([]byte(saved), service.AnyVersion); err == nil {
			e.notifier.Error("Could not reach the server, showing the last saved copy")
			return cause
		}
		e.logger.Warn("Stored document is unreadable", zap.String("key", e.domain.StorageKey))
	}
	e.notifier.Error("Could not load content, showing defaults")
	return cause
}

func (e *Editor) load(data []byte, version int64) error {
	doc, err := content.ParseObject(data)
	if err != nil {
		return err
	}
	e.doc = doc
	e.version = version
	e.dirty = false
	return nil
}

// remember writes the buffer to the store as the last good copy
func (e *Editor) remember(ctx context.Context) {
	if err := e.store.Set(ctx, e.domain.StorageKey, string(e.Data())); err != nil {
		e.logger.Warn("Failed to store document copy", zap.Error(err))
	}
}

func (e *Editor) ifMatch() int64 {
	if e.checkVersion {
		return e.version
	}
	return service.AnyVersion
}

// Save writes the whole buffer. On failure the buffer is kept as is.
func (e *Editor) Save(ctx context.Context) error {
	if e.client == nil {
		return ErrNoClient
	}
	saved, err := e.client.PutDocument(ctx, e.domain.Name, e.Data(), e.ifMatch())
	if err != nil {
		return e.saveFailed(err)
	}
	if err := e.load(saved.Data, saved.Version); err != nil {
		e.logger.Warn("Saved document echo is unreadable", zap.Error(err))
		e.version = saved.Version
		e.dirty = false
	}
	e.remember(ctx)
	e.logger.Info("Document saved", zap.Int64("version", e.version))
	e.notifier.Success("Saved successfully")
	return nil
}

// SaveSection writes one top-level section. The server leaves every other
// section as it is stored.
func (e *Editor) SaveSection(ctx context.Context, section string) error {
	raw, err := e.section(section)
	if err != nil {
		return err
	}
	if e.client == nil {
		return ErrNoClient
	}
	saved, err := e.client.PutSection(ctx, e.domain.Name, section, raw, e.ifMatch())
	if err != nil {
		return e.saveFailed(err)
	}
	e.version = saved.Version
	e.dirty = false
	e.remember(ctx)
	e.logger.Info("Section saved", zap.String("section", section), zap.Int64("version", e.version))
	e.notifier.Success("Saved successfully")
	return nil
}

// SaveSectionMerged fetches the stored document, replaces one section with
// the buffer's and writes the result back guarded by the fetched version.
func (e *Editor) SaveSectionMerged(ctx context.Context, section string) error {
	raw, err := e.section(section)
	if err != nil {
		return err
	}
	if e.client == nil {
		return ErrNoClient
	}
	remote, err := e.client.GetDocument(ctx, e.domain.Name)
	if err != nil {
		return e.saveFailed(err)
	}
	merged, err := content.ParseObject(remote.Data)
	if err != nil {
		return e.saveFailed(err)
	}
	merged.Set(section, raw)

	saved, err := e.client.PutDocument(ctx, e.domain.Name, merged.Bytes(), remote.Version)
	if err != nil {
		return e.saveFailed(err)
	}
	if err := e.load(saved.Data, saved.Version); err != nil {
		return e.saveFailed(err)
	}
	e.remember(ctx)
	e.logger.Info("Section merged", zap.String("section", section), zap.Int64("version", e.version))
	e.notifier.Success("Saved successfully")
	return nil
}

func (e *Editor) section(section string) (json.RawMessage, error) {
	if !e.domain.HasSection(section) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	raw, ok := e.doc.Get(section)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not set", ErrUnknownSection, section)
	}
	return raw, nil
}

func (e *Editor) saveFailed(err error) error {
	e.logger.Error("Failed to save document", zap.Error(err))
	switch {
	case IsConflict(err):
		e.notifier.Error("Content was changed elsewhere, reload before saving")
	case IsUnauthorized(err):
		e.notifier.Error("Sign in again to save")
	default:
		e.notifier.Error("Failed to save")
	}
	return err
}

// Export writes the buffer as indented JSON
func (e *Editor) Export(w io.Writer) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, e.Data(), "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

// Import replaces the buffer with a document read from r. A document that
// does not parse or validate is rejected and the buffer is left unchanged.
func (e *Editor) Import(r io.Reader) error {
	if e.locked {
		return ErrLocked
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if _, err := e.domain.Decode(data); err != nil {
		e.logger.Warn("Rejected import", zap.Error(err))
		e.notifier.Error("Invalid JSON file")
		return err
	}
	doc, err := content.ParseObject(data)
	if err != nil {
		e.notifier.Error("Invalid JSON file")
		return err
	}
	e.doc = doc
	e.dirty = true
	e.notifier.Success("Imported successfully")
	return nil
}

func splitPath(path string) []string {
	return strings.Split(path, ".")
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func getPath(doc *content.Object, path string) (json.RawMessage, bool, error) {
	parts := splitPath(path)
	obj := doc
	for i, part := range parts {
		raw, ok := obj.Get(part)
		if !ok {
			return nil, false, nil
		}
		if i == len(parts)-1 {
			return raw, true, nil
		}
		if isNull(raw) {
			return nil, false, nil
		}
		next, err := content.ParseObject(raw)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", strings.Join(parts[:i+1], "."), err)
		}
		obj = next
	}
	return nil, false, nil
}

func setPath(obj *content.Object, parts []string, value json.RawMessage) error {
	if len(parts) == 1 {
		obj.Set(parts[0], value)
		return nil
	}
	child := content.NewObject()
	if raw, ok := obj.Get(parts[0]); ok && !isNull(raw) {
		parsed, err := content.ParseObject(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", parts[0], err)
		}
		child = parsed
	}
	if err := setPath(child, parts[1:], value); err != nil {
		return err
	}
	obj.Set(parts[0], child.Bytes())
	return nil
}
