package contact

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"

	"gopkg.in/yaml.v3"
)

// PoolsFile is the file name LoadPools reads from its filesystem.
const PoolsFile = "pools.yaml"

// ErrEmptyPool indicates a sample pool is empty or holds a blank entry.
var ErrEmptyPool = errors.New("contact: empty pool")

// Pools holds the fixed value pools sample contacts are drawn from.
type Pools struct {
	Names     []string `yaml:"names"`
	LastNames []string `yaml:"last_names"`
	Emails    []string `yaml:"emails"`
	Phones    []string `yaml:"phones"`
}

// LoadPools reads PoolsFile from fsys and validates it.
func LoadPools(fsys fs.FS) (Pools, error) {
	data, err := fs.ReadFile(fsys, PoolsFile)
	if err != nil {
		return Pools{}, fmt.Errorf("contact: reading pools: %w", err)
	}
	return ParsePools(data)
}

// ParsePools decodes pools from YAML. Unknown fields are rejected.
func ParsePools(data []byte) (Pools, error) {
	var p Pools
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Pools{}, fmt.Errorf("contact: parsing pools: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Pools{}, err
	}
	return p, nil
}

// Validate checks that every pool has at least one entry and that no
// entry is blank, so every generated contact has non-empty fields. Pool
// sizes are otherwise free; the embedded pools ship six values each.
func (p Pools) Validate() error {
	pools := []struct {
		name   string
		values []string
	}{
		{"names", p.Names},
		{"last_names", p.LastNames},
		{"emails", p.Emails},
		{"phones", p.Phones},
	}
	for _, pool := range pools {
		if len(pool.values) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyPool, pool.name)
		}
		for i, v := range pool.values {
			if v == "" {
				return fmt.Errorf("%w: %s[%d] is blank", ErrEmptyPool, pool.name, i)
			}
		}
	}
	return nil
}

// sample draws one contact, each field uniformly and independently.
func (p Pools) sample(r *rand.Rand) Contact {
	return New(
		pick(r, p.Names),
		pick(r, p.LastNames),
		pick(r, p.Emails),
		pick(r, p.Phones),
	)
}

func pick(r *rand.Rand, values []string) string {
	return values[r.IntN(len(values))]
}
