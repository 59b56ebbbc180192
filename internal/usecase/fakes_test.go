package usecase

import "errors"

type fakeQueries struct {
	branch      string
	branchErr   error
	remotes     []string
	remotesErr  error
	urls        map[string]string
	upstream    string
	upstreamErr error

	calls []string
}

func (f *fakeQueries) LocalBranch(string) (string, error) {
	f.calls = append(f.calls, "localbranch")
	return f.branch, f.branchErr
}

func (f *fakeQueries) Remotes(string) ([]string, error) {
	f.calls = append(f.calls, "remotes")
	return f.remotes, f.remotesErr
}

func (f *fakeQueries) RemoteURL(_ string, name string) (string, error) {
	f.calls = append(f.calls, "remoteurl")
	url, ok := f.urls[name]
	if !ok {
		return "", errors.New("no such remote: " + name)
	}
	return url, nil
}

func (f *fakeQueries) UpstreamRef(string) (string, error) {
	f.calls = append(f.calls, "upstreamref")
	return f.upstream, f.upstreamErr
}

type fakePrompter struct {
	selectResult string
	selectErr    error
	queryResult  string
	queryErr     error

	selectCalls int
	queryCalls  int
	gotNames    []string
	gotDefault  string
}

func (f *fakePrompter) SelectRemote(names []string) (string, error) {
	f.selectCalls++
	f.gotNames = names
	return f.selectResult, f.selectErr
}

func (f *fakePrompter) ReadQuery(def string) (string, error) {
	f.queryCalls++
	f.gotDefault = def
	return f.queryResult, f.queryErr
}

type fakeLocator struct {
	root string
	err  error
}

func (f *fakeLocator) FindRoot(string) (string, error) {
	return f.root, f.err
}

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(url string) error {
	if f.err != nil {
		return f.err
	}
	f.opened = append(f.opened, url)
	return nil
}
