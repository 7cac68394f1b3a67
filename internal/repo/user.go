package repo

// Username shows the username, or sets it when name is given.
func (r *Repository) Username(name string) (Result, error) {
	name = foldLines(name)
	if name == "" {
		current, err := r.Meta.GetUsername()
		if err != nil {
			return Result{}, err
		}
		if current == "" {
			return result(Unconfigured, msgWhoAreYou), nil
		}
		return result(OK, msgUsername, current), nil
	}

	if err := r.Meta.SetUsername(name); err != nil {
		return Result{}, err
	}
	r.Log.Debug("username set", "name", name)
	return result(OK, msgUsername, name), nil
}
