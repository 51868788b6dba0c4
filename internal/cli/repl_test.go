package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	failWith error

	calls    []string
	args     [][]string
	reported []error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.failWith
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) handleError(ctx context.Context, err error) {
	f.reported = append(f.reported, err)
}
func (f *fakeExec) Register(ctx context.Context) error { return f.record("register", nil) }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) WhoAmI(ctx context.Context) error { return f.record("whoami", nil) }
func (f *fakeExec) DeleteAccount(ctx context.Context) error { return f.record("deleteaccount", nil) }
func (f *fakeExec) List(ctx context.Context, args []string) error {
	return f.record("list", args)
}
func (f *fakeExec) Search(ctx context.Context, args []string) error {
	return f.record("search", args)
}
func (f *fakeExec) Sort(ctx context.Context, args []string) error {
	return f.record("sort", args)
}
func (f *fakeExec) New(ctx context.Context) error { return f.record("new", nil) }
func (f *fakeExec) Edit(ctx context.Context, args []string) error {
	return f.record("edit", args)
}
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	return f.record("show", args)
}
func (f *fakeExec) Delete(ctx context.Context, args []string) error {
	return f.record("delete", args)
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	printed := capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"new",
		"list titleAZ",
		"l",
		"search weekly budget",
		"sort",
		"show n1",
		"edit n1",
		"delete",
		"whoami",
		"",
		"foobar",
		"logout",
		"deleteaccount",
		"register",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login", "new", "list", "list", "search", "sort", "show", "edit",
		"delete", "whoami", "logout", "deleteaccount", "register",
	}, exec.calls, "nothing after exit runs")

	assert.Equal(t, []string{"titleAZ"}, exec.args[2])
	assert.Equal(t, []string{"weekly", "budget"}, exec.args[4])
	assert.Equal(t, []string{"n1"}, exec.args[6])
	assert.Empty(t, exec.args[8])

	assert.Contains(t, *printed, "Available commands: register, login, exit")
	assert.Contains(t, *printed, "Unknown command: foobar")
	assert.Contains(t, *printed, "nk status> ")
	assert.Equal(t, "Bye!", (*printed)[len(*printed)-1])
	assert.Empty(t, exec.reported)
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	capturePrintln(t)

	boom := errors.New("boom")
	exec := &fakeExec{loggedIn: true, failWith: boom}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("list\nnew\nquit\n")))

	assert.Equal(t, []string{"list", "new"}, exec.calls)
	assert.Equal(t, []error{boom, boom}, exec.reported)
}

func TestRunREPL_StopsAtEndOfInput(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("list\nshow x")))

	assert.Equal(t, []string{"list", "show"}, exec.calls, "a final line without newline still runs")
}
