package main

import (
	"fmt"

	"github.com/netlistpaths/netlistgraph/internal/mmfile"
	"github.com/netlistpaths/netlistgraph/pkg/netlist"
)

// loadNetlist maps xmlPath into memory and runs it through the full
// ingest/check/canonicalise pipeline. The returned cleanup must be called
// once the caller is done querying the result.
func loadNetlist(xmlPath string) (*netlist.Netlist, func() error, error) {
	data, cleanup, err := mmfile.Map(xmlPath)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("failed to open %s: %w", xmlPath, err)
	}

	nl, err := netlist.Load(data, netlist.Options{
		Logger:        newLogger(),
		FullFileNames: fullPaths,
		MaxAllPaths:   maxPaths,
	})
	if err != nil {
		_ = cleanup()
		return nil, func() error { return nil }, fmt.Errorf("failed to load netlist: %w", err)
	}
	return nl, cleanup, nil
}
