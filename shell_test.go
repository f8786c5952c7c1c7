package retropda

import (
	"errors"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	name      string
	closed    int
	refreshed int
	emitter   Emitter
}

func (v *fakeView) Object() fyne.CanvasObject { return widget.NewLabel(v.name) }
func (v *fakeView) Close()                    { v.closed++ }
func (v *fakeView) Refresh()                  { v.refreshed++ }

type fakeDisplay struct {
	shown []View
}

func (d *fakeDisplay) Show(v View) { d.shown = append(d.shown, v) }

func (d *fakeDisplay) last() View {
	if len(d.shown) == 0 {
		return nil
	}
	return d.shown[len(d.shown)-1]
}

type fakeInstaller struct {
	entry ManifestEntry
	ok    bool
	err   error
	calls int
}

func (f *fakeInstaller) Install() (ManifestEntry, bool, error) {
	f.calls++
	return f.entry, f.ok, f.err
}

type shellFixture struct {
	shell   *Shell
	display *fakeDisplay
	home    *fakeView
	built   map[string][]*fakeView
}

func newShellFixture(t *testing.T, installer Installer, names ...string) *shellFixture {
	t.Helper()
	f := &shellFixture{display: &fakeDisplay{}, built: map[string][]*fakeView{}}
	reg := NewRegistry()
	for _, name := range names {
		require.NoError(t, reg.Register(ToolDescriptor{
			Name: name,
			Factory: func(e Emitter) View {
				v := &fakeView{name: name, emitter: e}
				f.built[name] = append(f.built[name], v)
				return v
			},
		}))
	}
	var errs []error
	s, err := NewShell(ShellOptions{
		Registry: reg,
		Display:  f.display,
		Home: func(e Emitter) View {
			f.home = &fakeView{name: "home", emitter: e}
			return f.home
		},
		Installer: installer,
		OnError:   func(err error) { errs = append(errs, err) },
	})
	require.NoError(t, err)
	f.shell = s
	return f
}

func TestShellStartsAtHome(t *testing.T) {
	f := newShellFixture(t, nil, "A")
	assert.True(t, f.shell.IsHome())
	assert.Same(t, f.home, f.display.last())
	assert.Equal(t, "", f.shell.ActiveTool())
}

func TestActivateThenReturnHome(t *testing.T) {
	names := []string{"File Explorer", "Terminal", "Extensions", "Calculator"}
	f := newShellFixture(t, nil, names...)
	for _, name := range names {
		require.NoError(t, f.shell.Activate(name))
		assert.False(t, f.shell.IsHome())
		assert.Equal(t, name, f.shell.ActiveTool())
		assert.Same(t, f.built[name][0], f.display.last())

		f.shell.ReturnHome()
		assert.True(t, f.shell.IsHome(), name)
		assert.Same(t, f.home, f.shell.Current())
		assert.Same(t, f.home, f.display.last())
		assert.Equal(t, 1, f.built[name][0].closed)
	}
	assert.Equal(t, len(names), f.home.refreshed)
}

func TestActivateBuildsFreshViews(t *testing.T) {
	f := newShellFixture(t, nil, "A", "B")
	require.NoError(t, f.shell.Activate("A"))
	require.NoError(t, f.shell.Activate("A"))
	require.Len(t, f.built["A"], 2)
	assert.NotSame(t, f.built["A"][0], f.built["A"][1])
	assert.Equal(t, 1, f.built["A"][0].closed)
	assert.Equal(t, 0, f.built["A"][1].closed)

	require.NoError(t, f.shell.Activate("B"))
	assert.Equal(t, 1, f.built["A"][1].closed)
	assert.Equal(t, "B", f.shell.ActiveTool())
}

func TestActivationIDs(t *testing.T) {
	f := newShellFixture(t, nil, "A")
	assert.Empty(t, f.shell.ActivationID())

	require.NoError(t, f.shell.Activate("A"))
	first := f.shell.ActivationID()
	require.NotEmpty(t, first)

	require.NoError(t, f.shell.Activate("A"))
	assert.NotEqual(t, first, f.shell.ActivationID())

	f.shell.ReturnHome()
	assert.Empty(t, f.shell.ActivationID())
}

func TestActivateUnknown(t *testing.T) {
	f := newShellFixture(t, nil, "A")
	err := f.shell.Activate("nope")
	assert.ErrorIs(t, err, ErrUnknownTool)
	assert.True(t, f.shell.IsHome())
}

func TestIntentsFromViews(t *testing.T) {
	f := newShellFixture(t, nil, "A")
	f.home.emitter.Emit(ActivateTool{Name: "A"})
	require.Equal(t, "A", f.shell.ActiveTool())

	f.built["A"][0].emitter.Emit(NavigateHome{})
	assert.True(t, f.shell.IsHome())
	assert.Equal(t, 1, f.built["A"][0].closed)
}

func TestReturnHomeAtHomeIsHarmless(t *testing.T) {
	f := newShellFixture(t, nil, "A")
	f.shell.ReturnHome()
	f.shell.ReturnHome()
	assert.True(t, f.shell.IsHome())
	assert.Equal(t, 0, f.home.closed)
}

func TestInstallRefreshesViews(t *testing.T) {
	inst := &fakeInstaller{entry: ManifestEntry{Name: "x.py", Path: "/x.py"}, ok: true}
	f := newShellFixture(t, inst, "A")
	require.NoError(t, f.shell.Activate("A"))
	homeBefore := f.home.refreshed

	f.built["A"][0].emitter.Emit(InstallRequested{})
	assert.Equal(t, 1, inst.calls)
	assert.Equal(t, 1, f.built["A"][0].refreshed)
	assert.Equal(t, homeBefore+1, f.home.refreshed)
	assert.Equal(t, "A", f.shell.ActiveTool())
}

func TestInstallCancelledDoesNothing(t *testing.T) {
	inst := &fakeInstaller{ok: false}
	f := newShellFixture(t, inst, "A")
	require.NoError(t, f.shell.Activate("A"))
	f.shell.Dispatch(InstallRequested{})
	assert.Equal(t, 1, inst.calls)
	assert.Equal(t, 0, f.built["A"][0].refreshed)
}

func TestInstallErrorReported(t *testing.T) {
	inst := &fakeInstaller{err: errors.New("disk full")}
	display := &fakeDisplay{}
	reg := NewRegistry()
	var got []error
	s, err := NewShell(ShellOptions{
		Registry:  reg,
		Display:   display,
		Home:      func(Emitter) View { return &fakeView{name: "home"} },
		Installer: inst,
		OnError:   func(err error) { got = append(got, err) },
	})
	require.NoError(t, err)
	s.Dispatch(InstallRequested{})
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Error(), "disk full")
}

func TestManifestChangedRefreshes(t *testing.T) {
	f := newShellFixture(t, nil, "A")
	require.NoError(t, f.shell.Activate("A"))
	before := f.home.refreshed
	f.shell.Dispatch(ManifestChanged{})
	assert.Equal(t, 1, f.built["A"][0].refreshed)
	assert.Equal(t, before+1, f.home.refreshed)
}

func TestShellClose(t *testing.T) {
	f := newShellFixture(t, nil, "A")
	require.NoError(t, f.shell.Activate("A"))
	f.shell.Close()
	assert.Equal(t, 1, f.built["A"][0].closed)
	assert.True(t, f.shell.IsHome())
}

func TestNewShellRequiresParts(t *testing.T) {
	_, err := NewShell(ShellOptions{})
	assert.Error(t, err)
	_, err = NewShell(ShellOptions{Registry: NewRegistry()})
	assert.Error(t, err)
	_, err = NewShell(ShellOptions{Registry: NewRegistry(), Display: &fakeDisplay{}})
	assert.Error(t, err)
}

func TestShellWithHomeView(t *testing.T) {
	test.NewTempApp(t)
	cfg := DefaultConfig()
	cfg.DataDir = filepath.Join(t.TempDir(), "data")
	store := NewManifestStore(cfg)

	reg := NewRegistry()
	var built []*fakeView
	for _, name := range []string{"One", "Two"} {
		require.NoError(t, reg.Register(ToolDescriptor{Name: name, Factory: func(e Emitter) View {
			v := &fakeView{name: name, emitter: e}
			built = append(built, v)
			return v
		}}))
	}
	win := test.NewWindow(nil)
	defer win.Close()

	s, err := NewShell(ShellOptions{
		Registry: reg,
		Display:  NewWindowDisplay(win),
		Home:     NewHomeFactory(HomeOptions{Title: "T", Registry: reg, Manifest: store}),
	})
	require.NoError(t, err)
	home := s.Home().(*HomeView)
	assert.Same(t, home.Object(), win.Content())

	test.Tap(home.Tile("Two"))
	assert.Equal(t, "Two", s.ActiveTool())
	require.Len(t, built, 1)

	s.ReturnHome()
	assert.Same(t, home.Object(), win.Content())
}
