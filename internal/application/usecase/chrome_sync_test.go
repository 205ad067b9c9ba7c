package usecase_test

import (
	"context"
	"testing"

	"github.com/bnema/shower/internal/application/port/mocks"
	"github.com/bnema/shower/internal/application/usecase"
	"github.com/bnema/shower/internal/domain/command"
	"github.com/bnema/shower/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSync(view *fakeRenderView, style usecase.ChromeStyle) (*usecase.NavigationController, *usecase.ChromeStateSync, *fakeChrome) {
	nc := usecase.NewNavigationController(view, entity.NewWindowViewState(false), command.NewInterpreter(""), nil)
	chrome := &fakeChrome{}
	cs := usecase.NewChromeStateSync(nc, chrome, style)
	view.Subscribe(cs)
	return nc, cs, chrome
}

func plainStyle() usecase.ChromeStyle {
	style := usecase.DefaultChromeStyle()
	style.TLSIndicator = false
	return style
}

func TestChromeStateSync_ProgressThenRevert(t *testing.T) {
	ctx := context.Background()
	view := &fakeRenderView{}
	nc, cs, chrome := newSync(view, plainStyle())

	_, err := nc.SubmitText(ctx, "example.com")
	require.NoError(t, err)

	cs.OnLoadStarted(ctx)
	assert.True(t, chrome.stopEnabled)
	assert.True(t, chrome.progressOn)
	assert.Equal(t, 0, chrome.progress)

	cs.OnLoadProgress(ctx, 42)
	assert.Equal(t, "42% https://example.com", chrome.markup)
	assert.Equal(t, 42, chrome.progress)
	assert.False(t, chrome.complete)

	view.commit(ctx, "https://example.com/")
	cs.OnLoadFinished(ctx)
	assert.Equal(t, "https://example.com/", chrome.markup)
	assert.False(t, chrome.stopEnabled)
	assert.False(t, chrome.progressOn)
	assert.False(t, nc.State().IsLoading)
}

func TestChromeStateSync_CompleteStyleAtHundred(t *testing.T) {
	ctx := context.Background()
	view := &fakeRenderView{}
	nc, cs, chrome := newSync(view, plainStyle())

	_, err := nc.SubmitText(ctx, "example.com")
	require.NoError(t, err)
	cs.OnLoadStarted(ctx)
	cs.OnLoadProgress(ctx, 100)

	assert.True(t, chrome.complete)
	assert.Equal(t, "<b>100%</b> https://example.com", chrome.markup)
}

func TestChromeStateSync_HoverEscapedAndReverts(t *testing.T) {
	ctx := context.Background()
	view := &fakeRenderView{}
	_, cs, chrome := newSync(view, plainStyle())
	view.commit(ctx, "https://page.example/")

	cs.OnHoverChanged(ctx, `https://evil.example/?a=<b>&c="d"`)
	assert.Equal(t, "<i>https://evil.example/?a=&lt;b&gt;&amp;c=&#34;d&#34;</i>", chrome.markup)

	cs.OnHoverChanged(ctx, "")
	assert.Equal(t, "https://page.example/", chrome.markup)
}

func TestChromeStateSync_HoverWinsOverProgress(t *testing.T) {
	ctx := context.Background()
	view := &fakeRenderView{}
	nc, cs, chrome := newSync(view, plainStyle())

	_, err := nc.SubmitText(ctx, "example.com")
	require.NoError(t, err)
	cs.OnLoadStarted(ctx)
	cs.OnHoverChanged(ctx, "https://link.example/")
	assert.Equal(t, "<i>https://link.example/</i>", chrome.markup)

	cs.OnHoverChanged(ctx, "")
	assert.Equal(t, "0% https://example.com", chrome.markup)
}

func TestChromeStateSync_Title(t *testing.T) {
	ctx := context.Background()
	view := &fakeRenderView{}
	style := plainStyle()
	style.AppName = "shower"
	_, cs, chrome := newSync(view, style)

	cs.OnTitleChanged(ctx, "Cats")
	assert.Equal(t, "shower: Cats", chrome.title)

	cs.OnTitleChanged(ctx, "")
	assert.Equal(t, "shower", chrome.title)
}

func TestChromeStateSync_TLSIndicator(t *testing.T) {
	ctx := context.Background()
	view := &fakeRenderView{}
	_, cs, chrome := newSync(view, usecase.DefaultChromeStyle())

	view.commit(ctx, "https://site.example/a&b")
	cs.OnTLSChanged(ctx, entity.TLSSecure)
	assert.Contains(t, chrome.markup, `foreground="green"`)
	assert.Contains(t, chrome.markup, "</span>//site.example/a&amp;b")

	cs.OnTLSChanged(ctx, entity.TLSInsecure)
	assert.Contains(t, chrome.markup, `strikethrough="true"`)

	view.commit(ctx, "http://plain.example/")
	assert.Equal(t, "http://plain.example/", chrome.markup)
}

func TestChromeStateSync_StopFallbackEndsLoad(t *testing.T) {
	ctx := context.Background()
	view := &fakeRenderView{uri: "https://before.example/"}
	sched := &manualScheduler{}
	nc := usecase.NewNavigationController(view, entity.NewWindowViewState(false), command.NewInterpreter(""), sched)
	chrome := &fakeChrome{}
	usecase.NewChromeStateSync(nc, chrome, plainStyle())

	_, err := nc.SubmitText(ctx, "slow.example")
	require.NoError(t, err)
	require.NoError(t, nc.Stop(ctx))
	sched.fire()

	assert.False(t, nc.State().IsLoading)
	assert.False(t, chrome.stopEnabled)
	assert.Equal(t, "https://before.example/", chrome.markup)
}

func TestChromeStateSync_StopFallbackSparesNextLoad(t *testing.T) {
	ctx := context.Background()
	view := &fakeRenderView{uri: "https://before.example/"}
	sched := &manualScheduler{}
	nc := usecase.NewNavigationController(view, entity.NewWindowViewState(false), command.NewInterpreter(""), sched)
	chrome := &fakeChrome{}
	cs := usecase.NewChromeStateSync(nc, chrome, plainStyle())

	_, err := nc.SubmitText(ctx, "slow.example")
	require.NoError(t, err)
	cs.OnLoadStarted(ctx)
	require.NoError(t, nc.Stop(ctx))
	cs.OnLoadFinished(ctx)

	_, err = nc.SubmitText(ctx, "next.example")
	require.NoError(t, err)
	cs.OnLoadStarted(ctx)
	cs.OnLoadProgress(ctx, 30)
	sched.fire()

	assert.True(t, nc.State().IsLoading)
	assert.Equal(t, "https://next.example", nc.State().PendingURL)
	assert.True(t, chrome.stopEnabled)
	assert.True(t, chrome.progressOn)
	assert.Equal(t, 30, chrome.progress)
}

func TestChromeStateSync_WithMockChrome(t *testing.T) {
	ctx := context.Background()
	view := &fakeRenderView{}
	nc := usecase.NewNavigationController(view, entity.NewWindowViewState(false), command.NewInterpreter(""), nil)
	chrome := mocks.NewMockChromeView(t)
	cs := usecase.NewChromeStateSync(nc, chrome, plainStyle())

	chrome.EXPECT().SetWindowTitle("shower: Docs").Once()
	cs.OnTitleChanged(ctx, "Docs")
}

func TestFormatWindowTitle(t *testing.T) {
	assert.Equal(t, "app", usecase.FormatWindowTitle("app", "  "))
	assert.Equal(t, "app: t", usecase.FormatWindowTitle("app", "t"))
}
