package state

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/internal/models/entities"
)

type listState struct {
	Items []string
}

func cloneListState(s listState) listState {
	items := make([]string, len(s.Items))
	copy(items, s.Items)
	return listState{Items: items}
}

func TestStoreRunCommitsOnRemoteSuccess(t *testing.T) {
	st := NewStore(listState{Items: []string{"a"}}, cloneListState)

	err := st.Run(context.Background(), Mutation[listState]{
		Key: "items",
		Apply: func(s *listState) error {
			s.Items = append(s.Items, "b-local")
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return "b-server", nil
		},
		Reconcile: func(s *listState, result interface{}) error {
			s.Items[len(s.Items)-1] = result.(string)
			return nil
		},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b-server"}, st.View().Items)
}

func TestStoreRunRollsBackOnRemoteFailure(t *testing.T) {
	st := NewStore(listState{Items: []string{"a", "b"}}, cloneListState)
	before := st.View()

	err := st.Run(context.Background(), Mutation[listState]{
		Key: "items",
		Apply: func(s *listState) error {
			s.Items = append(s.Items, "c")
			return nil
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			return nil, errors.New("store unavailable")
		},
	})

	require.Error(t, err)
	assert.Equal(t, before, st.View())
}

func TestStoreRunApplyErrorSkipsRemote(t *testing.T) {
	st := NewStore(listState{}, cloneListState)
	remoteCalled := false

	err := st.Run(context.Background(), Mutation[listState]{
		Key: "items",
		Apply: func(s *listState) error {
			return errors.New("bad input")
		},
		Remote: func(ctx context.Context) (interface{}, error) {
			remoteCalled = true
			return nil, nil
		},
	})

	require.Error(t, err)
	assert.False(t, remoteCalled)
}

func TestStoreViewIsDeepCopy(t *testing.T) {
	st := NewStore(listState{Items: []string{"a"}}, cloneListState)

	view := st.View()
	view.Items[0] = "mutated"
	view.Items = append(view.Items, "extra")

	assert.Equal(t, []string{"a"}, st.View().Items)
}

func TestStoreSerializesSameKeyMutations(t *testing.T) {
	st := NewStore(listState{}, cloneListState)

	firstInRemote := make(chan struct{})
	release := make(chan struct{})
	var secondApplied atomic.Bool

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_ = st.Run(context.Background(), Mutation[listState]{
			Key:   "items",
			Apply: func(s *listState) error { return nil },
			Remote: func(ctx context.Context) (interface{}, error) {
				close(firstInRemote)
				<-release
				return nil, nil
			},
		})
	}()

	<-firstInRemote
	go func() {
		defer wg.Done()
		_ = st.Run(context.Background(), Mutation[listState]{
			Key: "items",
			Apply: func(s *listState) error {
				secondApplied.Store(true)
				return nil
			},
			Remote: func(ctx context.Context) (interface{}, error) { return nil, nil },
		})
	}()

	// The first mutation holds the key while its remote call is in flight,
	// so the second must not have applied yet.
	time.Sleep(50 * time.Millisecond)
	assert.False(t, secondApplied.Load())

	close(release)
	wg.Wait()
	assert.True(t, secondApplied.Load())
}

func TestStoreAllowsConcurrentMutationsOnDifferentKeys(t *testing.T) {
	st := NewStore(listState{}, cloneListState)

	firstInRemote := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = st.Run(context.Background(), Mutation[listState]{
			Key:   "flights",
			Apply: func(s *listState) error { return nil },
			Remote: func(ctx context.Context) (interface{}, error) {
				close(firstInRemote)
				<-release
				return nil, nil
			},
		})
	}()
	<-firstInRemote
	defer close(release)

	done := make(chan error, 1)
	go func() {
		done <- st.Run(context.Background(), Mutation[listState]{
			Key:    "hotels",
			Apply:  func(s *listState) error { return nil },
			Remote: func(ctx context.Context) (interface{}, error) { return nil, nil },
		})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("mutation on an unrelated key was blocked")
	}
}

func TestCloneTripStateIsDeep(t *testing.T) {
	notes := "original"
	s := TripState{}
	s.Data.Days = []entities.Day{{
		Ref:   entities.PersistedRef("d1"),
		Title: "Harbor day",
		Activities: []entities.Activity{
			{Ref: entities.PersistedRef("a1"), Name: "Nyhavn", Notes: &notes},
		},
	}}
	s.Data.MustDos = []entities.MustDo{{
		Ref:   entities.PersistedRef("m1"),
		Votes: []string{"t1"},
	}}

	clone := CloneTripState(s)
	*clone.Data.Days[0].Activities[0].Notes = "mutated"
	clone.Data.Days[0].Activities[0].Name = "changed"
	clone.Data.MustDos[0].Votes[0] = "t9"

	assert.Equal(t, "original", *s.Data.Days[0].Activities[0].Notes)
	assert.Equal(t, "Nyhavn", s.Data.Days[0].Activities[0].Name)
	assert.Equal(t, "t1", s.Data.MustDos[0].Votes[0])
}
