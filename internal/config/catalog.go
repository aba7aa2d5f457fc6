package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/kula-app/bikeshare-stats/internal/trips"
)

// ErrUnknownCity is returned when a catalog names a city that is not supported
var ErrUnknownCity = errors.New("unknown city")

// catalogFile is the decoded form of a catalog:
//
//	city "Chicago" {
//	  file = "${data_dir}/chicago.csv"
//	}
type catalogFile struct {
	Cities []*cityBlock `hcl:"city,block"`
}

type cityBlock struct {
	Name string `hcl:"name,label"`
	File string `hcl:"file"`
}

// Catalog maps every supported city to the CSV file holding its trips
type Catalog struct {
	paths map[trips.City]string
}

// DefaultCatalog resolves every city to its default file name in dataDir
func DefaultCatalog(dataDir string) *Catalog {
	paths := make(map[trips.City]string)
	for _, city := range trips.Cities() {
		paths[city] = filepath.Join(dataDir, city.DefaultFile())
	}
	return &Catalog{paths: paths}
}

// LoadCatalog reads an HCL catalog on top of the defaults for dataDir.
// The variable data_dir is available in expressions. Relative file paths
// are resolved against the directory of the catalog file.
func LoadCatalog(path, dataDir string) (*Catalog, error) {
	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory %s: %w", dataDir, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"data_dir": cty.StringVal(absDataDir),
		},
	}

	var decoded catalogFile
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &decoded); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", path, diags)
	}

	catalog := DefaultCatalog(absDataDir)
	seen := make(map[trips.City]bool)
	for _, block := range decoded.Cities {
		city, ok := trips.ParseCity(block.Name)
		if !ok {
			return nil, fmt.Errorf("%w %q in catalog %s", ErrUnknownCity, block.Name, path)
		}
		if seen[city] {
			return nil, fmt.Errorf("city %q declared twice in catalog %s", block.Name, path)
		}
		seen[city] = true

		if block.File == "" {
			return nil, fmt.Errorf("city %q has an empty file in catalog %s", block.Name, path)
		}

		cityPath := block.File
		if !filepath.IsAbs(cityPath) {
			cityPath = filepath.Join(filepath.Dir(path), cityPath)
		}
		catalog.paths[city] = cityPath
	}

	return catalog, nil
}

// Path returns the file for city
func (c *Catalog) Path(city trips.City) (string, error) {
	path, ok := c.paths[city]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}
	return path, nil
}
