package driver

import (
	"fmt"

	"prim/internal/diag"
	"prim/internal/lexer"
	"prim/internal/observ"
	"prim/internal/project"
	"prim/internal/rules"
	"prim/internal/source"
	"prim/internal/token"
)

// DefaultMaxDiagnostics bounds the bag when the caller does not.
const DefaultMaxDiagnostics = 100

// CheckOptions содержит опции для проверки
type CheckOptions struct {
	Config         project.Config
	Registry       *rules.Registry
	MaxDiagnostics int
	// Jobs ограничивает параллелизм CheckDir; 0 означает GOMAXPROCS.
	Jobs          int
	Cache         *DiskCache
	EnableTimings bool
	// Events, если задан, получает прогресс CheckDir. Канал закрывает
	// CheckDir по завершении обхода.
	Events chan<- Event
}

func (o CheckOptions) withDefaults() CheckOptions {
	// Нулевой Config означает, что вызывающий не загружал манифест.
	if o.Config.Style.MaxBlankLines < 1 {
		o.Config = project.Default()
	}
	if o.Registry == nil {
		o.Registry = rules.Default()
	}
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = DefaultMaxDiagnostics
	}
	return o
}

// CheckResult держит всё, что нужно после проверки одного файла: токены для
// повторного использования и bag с уже отсортированными диагностиками.
type CheckResult struct {
	FileSet *source.FileSet
	File    *source.File
	// Tokens пуст, когда диагностики пришли из кеша.
	Tokens []token.Token
	Bag    *diag.Bag
	Cached bool
	Timing *observ.Report
}

// Check запускает конвейер проверки одного файла: load → lex → rules.
func Check(path string, opts CheckOptions) (*CheckResult, error) {
	opts = opts.withDefaults()

	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}

	loadIdx := -1
	if timer != nil {
		loadIdx = timer.Begin("load")
	}
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if timer != nil {
		timer.End(loadIdx, "")
	}
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)
	result := &CheckResult{
		FileSet: fs,
		File:    file,
		Bag:     bag,
	}
	result.Tokens, result.Cached = checkLoadedFile(file, fileID, opts, timer, bag)

	if timer != nil {
		report := timer.Report()
		result.Timing = &report
		appendTimingDiagnostic(bag, timingPayload{
			Kind:    "file",
			Path:    file.Path,
			TotalMS: report.TotalMS,
			Phases:  report.Phases,
		})
	}

	return result, nil
}

// checkLoadedFile - общий хвост Check и CheckDir: cache, lex, rules,
// затем сортировка и запись в кеш. Диагностику с таймингами подкладывает
// вызывающий, когда снимет отчёт с таймера.
func checkLoadedFile(file *source.File, fileID source.FileID, opts CheckOptions, timer *observ.Timer, bag *diag.Bag) (tokens []token.Token, cached bool) {
	begin := func(name string) int {
		if timer == nil {
			return -1
		}
		return timer.Begin(name)
	}
	end := func(idx int, note string) {
		if timer == nil || idx < 0 {
			return
		}
		timer.End(idx, note)
	}

	var key project.Digest
	if opts.Cache != nil {
		key = checkCacheKey(file, opts.Config)
		cacheIdx := begin("cache")
		cached = loadCachedDiagnostics(opts.Cache, key, fileID, bag)
		note := ""
		if timer != nil {
			note = "miss"
			if cached {
				note = "hit"
			}
		}
		end(cacheIdx, note)
	}

	if !cached {
		lexIdx := begin("lex")
		tokens = lexFile(file, bag)
		lexNote := ""
		if timer != nil {
			lexNote = fmt.Sprintf("tokens=%d", len(tokens))
		}
		end(lexIdx, lexNote)

		rulesIdx := begin("rules")
		runRules(file, tokens, opts, bag)
		rulesNote := ""
		if timer != nil {
			rulesNote = fmt.Sprintf("diags=%d", bag.Len())
		}
		end(rulesIdx, rulesNote)
	}

	bag.Sort()
	if !cached {
		storeCachedDiagnostics(opts.Cache, key, bag)
	}
	return tokens, cached
}

// lexFile прогоняет файл через лексер целиком, включая EOF-токен.
func lexFile(file *source.File, bag *diag.Bag) []token.Token {
	lx := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			break
		}
	}
	return tokens
}

// runRules выполняет включённые правила в порядке кодов.
func runRules(file *source.File, tokens []token.Token, opts CheckOptions, bag *diag.Bag) {
	ctx := &rules.Ctx{
		File:   file,
		Tokens: tokens,
		Config: rules.Config{
			MaxBlankLines:       opts.Config.Style.MaxBlankLines,
			RequireFinalNewline: opts.Config.Style.RequireFinalNewline,
		},
		Reporter: diag.BagReporter{Bag: bag},
	}
	for _, rule := range opts.Registry.Rules() {
		if !opts.Config.RuleEnabled(rule.Name()) {
			continue
		}
		rule.Check(ctx)
	}
}
