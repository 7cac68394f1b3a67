package repo

// History returns the stored commit log, newest first.
func (r *Repository) History() (Result, error) {
	content, err := r.Meta.ReadLog()
	if err != nil {
		return Result{}, err
	}
	if content == "" {
		return result(NoOp, msgNoCommits), nil
	}
	return Result{Kind: OK, Text: content}, nil
}
