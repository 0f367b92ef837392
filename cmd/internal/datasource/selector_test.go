package datasource

import (
	"context"
	"testing"

	"github.com/amritkc/vocareapp/cmd/internal/mockdata"
	"github.com/stretchr/testify/assert"
)

// remoteStub embeds the mock provider so it satisfies Source, but is a
// distinct value the selector can be checked against.
type remoteStub struct {
	*mockdata.Provider
}

func TestSelector_SwitchRedirectsImmediately(t *testing.T) {
	mock := mockdata.NewProvider()
	remote := remoteStub{mockdata.NewProvider()}
	sel := NewSelector(mock, remote, false)

	assert.False(t, sel.UseMock())
	assert.Equal(t, remote, sel.Current())
	assert.Equal(t, "api", sel.Name())

	assert.True(t, sel.SetUseMock(true))
	assert.Same(t, mock, sel.Current())
	assert.Equal(t, "mock", sel.Name())

	assert.False(t, sel.SetUseMock(true), "setting the same value is not a change")

	sel.SetUseMock(false)
	assert.Equal(t, remote, sel.Current())
}

func TestSelector_IndependentPerView(t *testing.T) {
	mock := mockdata.NewProvider()
	remote := remoteStub{mockdata.NewProvider()}
	a := NewSelector(mock, remote, true)
	b := NewSelector(mock, remote, false)

	a.SetUseMock(false)
	b.SetUseMock(true)

	appts, err := b.Current().ListAppointments(context.Background())
	assert.NoError(t, err)
	assert.Len(t, appts, 3)
	assert.False(t, a.UseMock())
}
