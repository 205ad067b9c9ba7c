package usecase_test

import (
	"context"
	"time"

	"github.com/bnema/shower/internal/application/port"
	"github.com/bnema/shower/internal/domain/entity"
)

// fakeRenderView records requests and lets tests emit engine events.
type fakeRenderView struct {
	uri       string
	title     string
	loading   bool
	destroyed bool
	loadErr   error

	loads      []string
	finds      []string
	reloads    []bool
	stops      int
	backs      int
	forwards   int
	listeners  []port.RenderViewListener
	navHook    port.NavigationHook
	certHook   port.CertificateHook
	createHook port.CreateHook
}

var _ port.RenderView = (*fakeRenderView)(nil)

func (f *fakeRenderView) Load(_ context.Context, uri string) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	f.loads = append(f.loads, uri)
	return nil
}

func (f *fakeRenderView) GoBack(context.Context) error    { f.backs++; return nil }
func (f *fakeRenderView) GoForward(context.Context) error { f.forwards++; return nil }

func (f *fakeRenderView) Reload(_ context.Context, bypass bool) error {
	f.reloads = append(f.reloads, bypass)
	return nil
}

func (f *fakeRenderView) Stop(context.Context) error { f.stops++; return nil }

func (f *fakeRenderView) FindText(_ context.Context, q string) error {
	f.finds = append(f.finds, q)
	return nil
}

func (f *fakeRenderView) URI() string     { return f.uri }
func (f *fakeRenderView) Title() string   { return f.title }
func (f *fakeRenderView) IsLoading() bool { return f.loading }

func (f *fakeRenderView) Subscribe(l port.RenderViewListener) func() {
	f.listeners = append(f.listeners, l)
	return func() {}
}

func (f *fakeRenderView) SetNavigationHook(h port.NavigationHook)   { f.navHook = h }
func (f *fakeRenderView) SetCertificateHook(h port.CertificateHook) { f.certHook = h }
func (f *fakeRenderView) SetCreateHook(h port.CreateHook)           { f.createHook = h }
func (f *fakeRenderView) IsDestroyed() bool                         { return f.destroyed }
func (f *fakeRenderView) Destroy()                                  { f.destroyed = true }

// commit simulates the engine committing uri.
func (f *fakeRenderView) commit(ctx context.Context, uri string) {
	f.uri = uri
	for _, l := range f.listeners {
		l.OnURLChanged(ctx, uri)
	}
}

// fakeChrome records what ChromeStateSync renders.
type fakeChrome struct {
	markup      string
	markups     []string
	progress    int
	complete    bool
	progressOn  bool
	stopEnabled bool
	title       string
}

var (
	_ port.ChromeView = (*fakeChrome)(nil)
	_ port.Scheduler  = (*manualScheduler)(nil)
)

func (c *fakeChrome) SetAddressMarkup(m string) {
	c.markup = m
	c.markups = append(c.markups, m)
}

func (c *fakeChrome) SetProgress(p int, complete bool) {
	c.progress = p
	c.complete = complete
	c.progressOn = true
}

func (c *fakeChrome) HideProgress()           { c.progressOn = false }
func (c *fakeChrome) SetStopEnabled(on bool)  { c.stopEnabled = on }
func (c *fakeChrome) SetWindowTitle(t string) { c.title = t }

// manualScheduler runs scheduled callbacks only when fire is called.
type manualScheduler struct {
	pending []*scheduled
}

type scheduled struct {
	fn       func()
	canceled bool
}

func (s *manualScheduler) After(_ time.Duration, fn func()) func() {
	e := &scheduled{fn: fn}
	s.pending = append(s.pending, e)
	return func() { e.canceled = true }
}

func (s *manualScheduler) fire() {
	pending := s.pending
	s.pending = nil
	for _, e := range pending {
		if !e.canceled {
			e.fn()
		}
	}
}

func newLatentState() *entity.WindowViewState {
	return entity.NewWindowViewState(true)
}
