package snapshot

import (
	"encoding/hex"
	"io"
	"sync"

	"github.com/zeebo/xxh3"

	svcsErrors "github.com/keshon/svcs/internal/errors"
	"github.com/keshon/svcs/internal/fs"
	"github.com/keshon/svcs/internal/util"
)

// Digest identifies file content: its size and xxh3-128 hash.
type Digest struct {
	Size int64
	Sum  xxh3.Uint128
}

func (d Digest) String() string {
	b := d.Sum.Bytes()
	return hex.EncodeToString(b[:])
}

// DigestFile hashes the whole file at path.
func DigestFile(fsys fs.FS, path string) (Digest, error) {
	r, err := fsys.OpenReaderAt(path)
	if err != nil {
		return Digest{}, err
	}
	defer r.Close()

	size := int64(r.Len())
	h := xxh3.New()
	if _, err := io.Copy(h, io.NewSectionReader(r, 0, size)); err != nil {
		return Digest{}, err
	}
	return Digest{Size: size, Sum: h.Sum128()}, nil
}

// DigestFiles hashes every path concurrently. resolve maps a tracked path to
// the file to read.
func DigestFiles(fsys fs.FS, paths []string, resolve func(string) string) (map[string]Digest, error) {
	out := make(map[string]Digest, len(paths))
	var mu sync.Mutex

	err := util.Parallel(paths, util.WorkerCount(), func(rel string) error {
		d, err := DigestFile(fsys, resolve(rel))
		if err != nil {
			return svcsErrors.NewIOError("digest", rel, err)
		}
		mu.Lock()
		out[rel] = d
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// HashDigests folds a set of digests into one stable value, independent of
// map order.
func HashDigests(digests map[string]Digest) xxh3.Uint128 {
	paths := util.SortedKeys(digests)

	data := make([]byte, 0, len(paths)*64)
	for _, p := range paths {
		data = append(data, p...)
		data = append(data, 0)
		data = append(data, digests[p].String()...)
		data = append(data, '\n')
	}
	return xxh3.Hash128(data)
}
