package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"rsatoy/internal/domain"
)

// Default key file names.
const (
	PublicKeyFile  = "publickey.txt"
	PrivateKeyFile = "privatekey.txt"
)

// FileKeyStore reads and writes the key files under a directory.
type FileKeyStore struct {
	dir         string
	publicFile  string
	privateFile string
	mu          sync.Mutex
}

// NewFileKeyStore returns a FileKeyStore rooted at dir using the given file
// names; empty names fall back to the defaults.
func NewFileKeyStore(dir, publicFile, privateFile string) *FileKeyStore {
	if publicFile == "" {
		publicFile = PublicKeyFile
	}
	if privateFile == "" {
		privateFile = PrivateKeyFile
	}
	return &FileKeyStore{dir: dir, publicFile: publicFile, privateFile: privateFile}
}

// SavePublicKey writes the public key file, replacing any previous contents.
func (s *FileKeyStore) SavePublicKey(k domain.PublicKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	body := fmt.Sprintf("n: %d\nE: %d", k.N, k.E)
	return writeFile(filepath.Join(s.dir, s.publicFile), []byte(body), 0o600)
}

// SavePrivateKey writes the private key file, replacing any previous contents.
func (s *FileKeyStore) SavePrivateKey(k domain.PrivateKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	body := fmt.Sprintf("p: %d\nq: %d\nd: %d", k.P, k.Q, k.D)
	return writeFile(filepath.Join(s.dir, s.privateFile), []byte(body), 0o600)
}

// LoadPublicKey reads the public key file back. A missing file reports
// domain.ErrKeyNotFound.
func (s *FileKeyStore) LoadPublicKey() (domain.PublicKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields, err := s.readFields(s.publicFile)
	if err != nil {
		return domain.PublicKey{}, err
	}
	n, err := fieldValue(fields, s.publicFile, "n")
	if err != nil {
		return domain.PublicKey{}, err
	}
	// The canonical label is "E:"; older files used a lowercase "e:".
	e, err := fieldValue(fields, s.publicFile, "E")
	if errors.Is(err, errMissingField) {
		e, err = fieldValue(fields, s.publicFile, "e")
	}
	if err != nil {
		return domain.PublicKey{}, err
	}
	return domain.PublicKey{N: n, E: e}, nil
}

// LoadPrivateKey reads the private key file back. A missing file reports
// domain.ErrKeyNotFound.
func (s *FileKeyStore) LoadPrivateKey() (domain.PrivateKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields, err := s.readFields(s.privateFile)
	if err != nil {
		return domain.PrivateKey{}, err
	}
	p, err := fieldValue(fields, s.privateFile, "p")
	if err != nil {
		return domain.PrivateKey{}, err
	}
	q, err := fieldValue(fields, s.privateFile, "q")
	if err != nil {
		return domain.PrivateKey{}, err
	}
	d, err := fieldValue(fields, s.privateFile, "d")
	if err != nil {
		return domain.PrivateKey{}, err
	}
	return domain.PrivateKey{P: p, Q: q, D: d}, nil
}

var errMissingField = errors.New("missing field")

// readFields parses a key file of "label: value" lines into a map.
func (s *FileKeyStore) readFields(name string) (map[string]int64, error) {
	path := filepath.Join(s.dir, name)
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrKeyNotFound, path)
	}
	if err != nil {
		return nil, err
	}

	fields := make(map[string]int64)
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%s: malformed line %q", name, line)
		}
		v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: field %q: %w", name, label, err)
		}
		fields[strings.TrimSpace(label)] = v
	}
	return fields, sc.Err()
}

func fieldValue(fields map[string]int64, name, label string) (int64, error) {
	v, ok := fields[label]
	if !ok {
		return 0, fmt.Errorf("%w %q in %s", errMissingField, label, name)
	}
	return v, nil
}

// Compile-time assertion that FileKeyStore implements domain.KeyStore.
var _ domain.KeyStore = (*FileKeyStore)(nil)
