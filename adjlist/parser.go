// Package adjlist parses the adjacency-list text format capacity
// networks are distributed in. Each line describes one source node and
// its outgoing edges:
//
//	<srcId>: (dstId, capacity, attackCost, canAttackFlag) (dstId, ...) ...
//
// Node ids are non-negative integers. A canAttackFlag of 1.0 marks the
// edge attackable; any other value marks it off-limits. Lines are
// trimmed of surrounding whitespace; lines that then do not start with
// "<digits>:" are skipped, as are blank lines, so comments and headers
// pass through harmlessly. Node ids at or above
// the configured maximum are dropped together with their edges.
package adjlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/miraki/flowsim/core"
)

// ErrMaxNodes is returned for a non-positive WithMaxNodes value.
var ErrMaxNodes = errors.New("adjlist: max nodes must be positive")

// DefaultMaxNodes is the node-id cutoff applied when none is configured.
const DefaultMaxNodes = 1036

var (
	srcPattern  = regexp.MustCompile(`^(\d+):`)
	edgePattern = regexp.MustCompile(`\((\d+),\s*([\d.]+),\s*([\d.]+),\s*([\d.]+)\)`)
)

// Option configures parsing.
type Option func(*config)

type config struct {
	maxNodes int
	prefix   string
	err      error
}

// WithMaxNodes drops node ids ≥ n. n must be positive.
func WithMaxNodes(n int) Option {
	return func(c *config) {
		if n <= 0 {
			c.err = fmt.Errorf("%w: %d", ErrMaxNodes, n)
			return
		}
		c.maxNodes = n
	}
}

// WithNodePrefix relabels numeric node id i as "<prefix><i+1>", the
// display contract of the visualization front ends (raw id 0 becomes
// N1 with prefix "N"). The default keeps raw numeric ids as strings.
func WithNodePrefix(prefix string) Option {
	return func(c *config) { c.prefix = prefix }
}

// Parse reads the adjacency-list format from r into a fresh graph.
// Capacities below the graph's floor are clamped on insertion.
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	cfg := config{maxNodes: DefaultMaxNodes}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	g := core.NewGraph()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		m := srcPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		srcID, err := strconv.Atoi(m[1])
		if err != nil || srcID >= cfg.maxNodes {
			continue
		}
		src := cfg.label(srcID)
		g.AddVertex(src)

		for _, em := range edgePattern.FindAllStringSubmatch(line, -1) {
			dstID, err := strconv.Atoi(em[1])
			if err != nil || dstID >= cfg.maxNodes {
				continue
			}
			capacity, err := strconv.ParseFloat(em[2], 64)
			if err != nil {
				continue
			}
			cost, err := strconv.ParseFloat(em[3], 64)
			if err != nil {
				continue
			}
			flag, err := strconv.ParseFloat(em[4], 64)
			if err != nil {
				continue
			}
			if err = g.AddEdge(src, cfg.label(dstID), int64(capacity),
				core.WithAttackCost(cost),
				core.WithCanAttack(flag == 1.0),
			); err != nil {
				// Self-referencing lines occur in hand-edited files; drop them.
				continue
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("adjlist: read: %w", err)
	}

	return g, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("adjlist: open: %w", err)
	}
	defer f.Close()

	return Parse(f, opts...)
}

func (c config) label(id int) string {
	if c.prefix == "" {
		return strconv.Itoa(id)
	}
	return c.prefix + strconv.Itoa(id+1)
}
