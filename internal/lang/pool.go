package lang

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
)

// parserPool is a channel-based pool of tree-sitter parser instances for
// one language tag. Parser instances are stateful and must never be
// shared across goroutines concurrently; the pool only ever hands one
// out to one caller at a time.
type parserPool struct {
	pool    chan *ts.Parser
	langPtr unsafe.Pointer
	tag     Tag
	maxSize int

	mutex   sync.Mutex
	created int

	logger *slog.Logger
}

func newParserPool(tag Tag, langPtr unsafe.Pointer, maxSize int, logger *slog.Logger) *parserPool {
	return &parserPool{
		pool:    make(chan *ts.Parser, maxSize),
		langPtr: langPtr,
		tag:     tag,
		maxSize: maxSize,
		logger:  logger,
	}
}

func (p *parserPool) acquire() (*ts.Parser, error) {
	select {
	case parser := <-p.pool:
		return parser, nil
	default:
		return p.createOrWait()
	}
}

func (p *parserPool) createOrWait() (*ts.Parser, error) {
	p.mutex.Lock()

	if p.created < p.maxSize {
		parser := ts.NewParser()
		if parser == nil {
			p.mutex.Unlock()
			return nil, fmt.Errorf("failed to create parser for %s", p.tag)
		}
		if err := parser.SetLanguage(ts.NewLanguage(p.langPtr)); err != nil {
			parser.Close()
			p.mutex.Unlock()
			return nil, fmt.Errorf("failed to set language %s: %w", p.tag, err)
		}
		p.created++
		p.logger.Debug("created parser", "language", p.tag, "pool_size", p.created)
		p.mutex.Unlock()
		return parser, nil
	}

	p.mutex.Unlock()
	parser := <-p.pool
	return parser, nil
}

func (p *parserPool) release(parser *ts.Parser) {
	if parser == nil {
		return
	}
	select {
	case p.pool <- parser:
	default:
		parser.Close()
		p.logger.Warn("parser pool full, dropping parser", "language", p.tag)
	}
}

func (p *parserPool) close() {
	close(p.pool)
	count := 0
	for parser := range p.pool {
		if parser != nil {
			parser.Close()
			count++
		}
	}
	p.logger.Debug("closed parser pool", "language", p.tag, "parsers_closed", count)
}

func (p *parserPool) createdCount() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.created
}
