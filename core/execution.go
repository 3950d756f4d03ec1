package core

// ExecutionContext holds the credentials of the remote hardware service.
// Remote execution is used only when every field is set.
type ExecutionContext struct {
	Host        string `toml:"host"`
	User        string `toml:"user"`
	AccessToken string `toml:"access_token"`
	ProjectID   string `toml:"project_id"`
}

func ExecutionContextFromConf(c *Conf) ExecutionContext {
	return ExecutionContext{
		Host:        c.Host,
		User:        c.User,
		AccessToken: c.AccessToken,
		ProjectID:   c.ProjectID,
	}
}

func (e ExecutionContext) IsComplete() bool {
	return e.Host != "" && e.User != "" && e.AccessToken != "" && e.ProjectID != ""
}

// Merge fills the empty fields of e with the ones of o.
func (e ExecutionContext) Merge(o ExecutionContext) ExecutionContext {
	if e.Host == "" {
		e.Host = o.Host
	}
	if e.User == "" {
		e.User = o.User
	}
	if e.AccessToken == "" {
		e.AccessToken = o.AccessToken
	}
	if e.ProjectID == "" {
		e.ProjectID = o.ProjectID
	}
	return e
}
