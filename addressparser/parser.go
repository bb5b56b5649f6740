// Package addressparser is the public facade: it wires the
// normalizer, tokenizer, chart parser, tree visitor/disambiguator, and
// structure cache into the single entry point, Parser.Parse.
package addressparser

import (
	"github.com/address-parser/internal/cache"
	"github.com/address-parser/internal/chart"
	"github.com/address-parser/internal/grammar"
	"github.com/address-parser/internal/normalizer"
	"github.com/address-parser/internal/token"
	"github.com/address-parser/internal/tree"
	"github.com/address-parser/app/models"

	"go.uber.org/zap"
)

// Parser parses Argentine street addresses into AddressData. A
// *Parser is read-only after New returns (its chart parser is
// immutable, and its cache backend is internally synchronized), so
// it's safe to share across goroutines; see internal/cache for the
// backend's own concurrency notes.
type Parser struct {
	chart  *chart.Parser
	cache  cache.Cache
	logger *zap.Logger
}

// Option configures New.
type Option func(*options)

type options struct {
	grammarSource string
	cache         cache.Cache
	logger        *zap.Logger
}

// WithGrammarSource overrides the embedded default grammar with custom
// grammar source text.
func WithGrammarSource(source string) Option {
	return func(o *options) { o.grammarSource = source }
}

// WithCache overrides the default unbounded structure cache.
func WithCache(c cache.Cache) Option {
	return func(o *options) { o.cache = c }
}

// WithLogger attaches a logger for construction-time diagnostics. The
// parse path itself stays silent on success; Parse logs only if the
// grammar yields an address type that models.New rejects.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New builds a Parser. It returns an error only if the grammar (the
// embedded default, or one supplied via WithGrammarSource) fails
// validation — a malformed grammar is a construction-time defect, not
// a runtime condition Parse needs to handle.
func New(opts ...Option) (*Parser, error) {
	o := &options{grammarSource: grammar.DefaultSource(), logger: zap.NewNop()}
	for _, apply := range opts {
		apply(o)
	}

	g, err := grammar.Parse(o.grammarSource)
	if err != nil {
		o.logger.Error("invalid grammar", zap.Error(err))
		return nil, err
	}

	c := o.cache
	if c == nil {
		c = cache.NewUnbounded()
	}

	return &Parser{chart: chart.New(g), cache: c, logger: o.logger}, nil
}

// Parse extracts structured data from a free-text address, or returns
// nil if the text doesn't parse as a valid Argentine address, or
// parses multiple equally-plausible ways (a genuinely ambiguous
// input). Parse never errors: a bad address is not an exceptional
// condition, it is simply "no result".
func (p *Parser) Parse(address string) *models.AddressData {
	normalized := normalizer.Normalize(address)
	tokens := token.Scan(normalized)
	kinds := token.KindSequence(tokens)

	var typeNode *tree.Node
	if cached, hit := p.cache.Get(kinds); hit {
		if cached != nil {
			typeNode = tree.Rehydrate(cached, tokens)
		}
	} else {
		trees := p.chart.Parse(tokens)
		resolved := tree.Disambiguate(trees)
		p.cache.Put(kinds, resolved)
		if resolved != nil {
			typeNode = tree.Rehydrate(resolved, tokens)
		}
	}

	if typeNode == nil {
		return nil
	}

	extracted := tree.Extract(typeNode)
	var doorNumber *models.DoorNumber
	if extracted.DoorNumberValue != "" {
		doorNumber = &models.DoorNumber{Value: extracted.DoorNumberValue, Unit: extracted.DoorNumberUnit}
	}

	data, err := models.New(extracted.Type, extracted.StreetNames, doorNumber, extracted.Floor)
	if err != nil {
		// The grammar only ever labels a disambiguated tree
		// simple/intersection/between, so this would mean the grammar
		// and models.AddressTypes have drifted apart.
		p.logger.Error("grammar produced an unrecognized address type", zap.Error(err))
		return nil
	}
	return data
}

// CacheLen reports how many distinct token-kind shapes are currently
// cached, success and failure alike.
func (p *Parser) CacheLen() int {
	return p.cache.Len()
}
