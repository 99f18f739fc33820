// Package entity defines the domain entities for the analysis feature.
package entity

// LevelTwoResult is the nested level-2 section of a pipeline result.
type LevelTwoResult struct {
	ChangesApplied []string `json:"changes_applied"`
}

// PipelineResult is the outcome of one optimization pipeline run. The field
// names are the pipeline's wire contract; this service treats the analysis
// payloads as opaque key/value data. Every field is re-emitted to API
// clients, absent sections as explicit nulls, so none carry omitempty.
type PipelineResult struct {
	PassedErrorCheck  bool            `json:"passed_error_check"`
	OriginalCode      string          `json:"original_code"`
	OptimizedCode     string          `json:"optimized_code"`
	L1Changes         []string        `json:"l1_changes"`
	L2                *LevelTwoResult `json:"l2"`
	OriginalAnalysis  map[string]any  `json:"original_analysis"`
	OptimizedAnalysis map[string]any  `json:"optimized_analysis"`
	Error             *string         `json:"error"`
}

// ChangesForLevel extracts the change list appropriate for an optimization
// level: level1 carries its own list, level2 nests it, none has no changes.
func (r *PipelineResult) ChangesForLevel(level string) []string {
	switch level {
	case "level1":
		if r.L1Changes != nil {
			return r.L1Changes
		}
	case "level2":
		if r.L2 != nil {
			return r.L2.ChangesApplied
		}
	}
	return []string{}
}
