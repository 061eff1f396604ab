package project

// Stage is a step of a single project creation run. Stages only ever move
// forward.
type Stage int

const (
	StageValidating Stage = iota
	StageCreatingDirectories
	StageCopyingAssets
	StageWritingComponents
	StageWritingPages
	StageWritingRootFiles
	StageDone
)

var stageNames = [...]string{
	StageValidating:          "validating",
	StageCreatingDirectories: "creating directories",
	StageCopyingAssets:       "copying assets",
	StageWritingComponents:   "writing components",
	StageWritingPages:        "writing pages",
	StageWritingRootFiles:    "writing root files",
	StageDone:                "done",
}

// String returns a human-readable stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}
