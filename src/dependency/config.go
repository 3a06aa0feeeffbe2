package dependency

// AddRequest holds the arguments of the add command.
type AddRequest struct {
	Path        string
	Names       []string
	Dev         bool
	Features    string // raw --features value
	HasFeatures bool   // --features was given, even if empty
	Version     string
}

// RemoveRequest holds the arguments of the remove command.
type RemoveRequest struct {
	Path  string
	Names []string
}

// UpdateRequest holds the arguments of the update command. No names means
// update everything in one invocation.
type UpdateRequest struct {
	Path  string
	Names []string
}

// AnalyzeRequest holds the arguments of the analyze command.
type AnalyzeRequest struct {
	Path string
}
