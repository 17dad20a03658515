package diagfmt

import (
	"encoding/json"
	"io"

	"prim/internal/diag"
	"prim/internal/source"
)

const (
	sarifVersion   = "2.1.0"
	sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
)

// SarifLog представляет корневой документ SARIF.
type SarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SarifRun `json:"runs"`
}

// SarifRun представляет один прогон анализа.
type SarifRun struct {
	Tool        SarifTool         `json:"tool"`
	Invocations []SarifInvocation `json:"invocations,omitempty"`
	Results     []SarifResult     `json:"results"`
}

// SarifTool описывает инструмент анализа.
type SarifTool struct {
	Driver SarifDriver `json:"driver"`
}

// SarifDriver содержит метаданные инструмента и список правил.
type SarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version,omitempty"`
	Rules   []SarifRule `json:"rules"`
}

// SarifInvocation описывает запуск инструмента.
type SarifInvocation struct {
	Arguments           []string `json:"arguments,omitempty"`
	ExecutionSuccessful bool     `json:"executionSuccessful"`
}

// SarifRule описывает одно правило (код диагностики).
type SarifRule struct {
	ID               string           `json:"id"`
	ShortDescription SarifText        `json:"shortDescription"`
	DefaultConfig    *SarifRuleConfig `json:"defaultConfiguration,omitempty"`
}

// SarifText содержит текст сообщения.
type SarifText struct {
	Text string `json:"text"`
}

// SarifRuleConfig содержит конфигурацию правила.
type SarifRuleConfig struct {
	Level string `json:"level"`
}

// SarifResult представляет одну диагностику.
type SarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SarifText       `json:"message"`
	Locations []SarifLocation `json:"locations"`
	Fixes     []SarifFix      `json:"fixes,omitempty"`
}

// SarifLocation описывает местоположение в коде.
type SarifLocation struct {
	PhysicalLocation SarifPhysicalLocation `json:"physicalLocation"`
}

// SarifPhysicalLocation содержит путь файла и регион.
type SarifPhysicalLocation struct {
	ArtifactLocation SarifArtifactLocation `json:"artifactLocation"`
	Region           SarifRegion           `json:"region"`
}

// SarifArtifactLocation содержит URI файла.
type SarifArtifactLocation struct {
	URI string `json:"uri"`
}

// SarifRegion описывает затронутый участок текста.
type SarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

// SarifFix представляет предложенное исправление.
type SarifFix struct {
	Description     SarifText             `json:"description"`
	ArtifactChanges []SarifArtifactChange `json:"artifactChanges"`
}

// SarifArtifactChange описывает правки одного файла.
type SarifArtifactChange struct {
	ArtifactLocation SarifArtifactLocation `json:"artifactLocation"`
	Replacements     []SarifReplacement    `json:"replacements"`
}

// SarifReplacement описывает одну замену текста.
type SarifReplacement struct {
	DeletedRegion   SarifRegion           `json:"deletedRegion"`
	InsertedContent *SarifArtifactContent `json:"insertedContent,omitempty"`
}

// SarifArtifactContent содержит вставляемый текст.
type SarifArtifactContent struct {
	Text string `json:"text"`
}

func sarifLevel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

func sarifRegion(fs *source.FileSet, span source.Span) SarifRegion {
	startPos, endPos := fs.Resolve(span)
	return SarifRegion{
		StartLine:   int(startPos.Line),
		StartColumn: int(startPos.Col),
		EndLine:     int(endPos.Line),
		EndColumn:   int(endPos.Col),
	}
}

func sarifURI(fs *source.FileSet, id source.FileID) string {
	return fs.Get(id).FormatPath("relative", fs.BaseDir())
}

// BuildSarifLog формирует SARIF-документ без сериализации.
func BuildSarifLog(bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) SarifLog {
	name := meta.ToolName
	if name == "" {
		name = "prim"
	}

	run := SarifRun{
		Tool: SarifTool{
			Driver: SarifDriver{
				Name:    name,
				Version: meta.ToolVersion,
				Rules:   make([]SarifRule, 0),
			},
		},
		Results: make([]SarifResult, 0, bag.Len()),
	}
	if len(meta.InvocationArgs) > 0 {
		run.Invocations = []SarifInvocation{{
			Arguments:           meta.InvocationArgs,
			ExecutionSuccessful: true,
		}}
	}

	ctx := diag.FixBuildContext{FileSet: fs}
	rulesSeen := make(map[diag.Code]bool)

	for _, d := range bag.Items() {
		if !rulesSeen[d.Code] {
			run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, SarifRule{
				ID:               d.Code.ID(),
				ShortDescription: SarifText{Text: d.Code.Title()},
				DefaultConfig:    &SarifRuleConfig{Level: sarifLevel(d.Severity)},
			})
			rulesSeen[d.Code] = true
		}

		result := SarifResult{
			RuleID:  d.Code.ID(),
			Level:   sarifLevel(d.Severity),
			Message: SarifText{Text: d.Message},
			Locations: []SarifLocation{{
				PhysicalLocation: SarifPhysicalLocation{
					ArtifactLocation: SarifArtifactLocation{URI: sarifURI(fs, d.Primary.File)},
					Region:           sarifRegion(fs, d.Primary),
				},
			}},
		}

		for _, f := range orderFixes(d.Fixes) {
			resolved, err := f.Resolve(ctx)
			if err != nil || len(resolved.Edits) == 0 {
				continue
			}
			sarifFix := SarifFix{
				Description:     SarifText{Text: resolved.Title},
				ArtifactChanges: make([]SarifArtifactChange, 0, len(resolved.Edits)),
			}
			for _, edit := range resolved.Edits {
				replacement := SarifReplacement{
					DeletedRegion: sarifRegion(fs, edit.Span),
				}
				if edit.NewText != "" {
					replacement.InsertedContent = &SarifArtifactContent{Text: edit.NewText}
				}
				sarifFix.ArtifactChanges = append(sarifFix.ArtifactChanges, SarifArtifactChange{
					ArtifactLocation: SarifArtifactLocation{URI: sarifURI(fs, edit.Span.File)},
					Replacements:     []SarifReplacement{replacement},
				})
			}
			result.Fixes = append(result.Fixes, sarifFix)
		}

		run.Results = append(run.Results, result)
	}

	return SarifLog{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs:    []SarifRun{run},
	}
}

// Sarif форматирует диагностики в SARIF формат (v2.1.0).
func Sarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) error {
	output := BuildSarifLog(bag, fs, meta)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
