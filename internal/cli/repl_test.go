package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) record(name string, args ...string) error {
	f.calls = append(f.calls, name)
	f.args = args
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Whoami(ctx context.Context) error { return f.record("whoami") }
func (f *fakeExec) List(ctx context.Context, args []string) error {
	return f.record("list", args...)
}
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	return f.record("show", args...)
}
func (f *fakeExec) Locate(ctx context.Context, args []string) error {
	return f.record("locate", args...)
}
func (f *fakeExec) Create(ctx context.Context) error { return f.record("create") }
func (f *fakeExec) Update(ctx context.Context, args []string) error {
	return f.record("update", args...)
}
func (f *fakeExec) Profile(ctx context.Context) error             { return f.record("profile") }
func (f *fakeExec) RequestVerification(ctx context.Context) error { return f.record("verifyme") }
func (f *fakeExec) Creators(ctx context.Context) error            { return f.record("creators") }
func (f *fakeExec) VerifyCreator(ctx context.Context, args []string) error {
	return f.record("verify", args...)
}
func (f *fakeExec) UnverifyCreator(ctx context.Context, args []string) error {
	return f.record("unverify", args...)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"list food bank",
		"login",
		"help",
		"locate 10.82 106.63",
		"create",
		"show 7",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"list", "login", "locate", "create", "show"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, wantOrder)
	}
	for i, c := range exec.calls {
		if c != wantOrder[i] {
			t.Fatalf("calls order mismatch: got %v, want %v", exec.calls, wantOrder)
		}
	}
	if len(exec.args) != 1 || exec.args[0] != "7" {
		t.Fatalf("show args not passed through: %v", exec.args)
	}
}

func TestRunREPL_QuitWithoutCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
