package providers

import (
	"context"
	"scoreboard/internal/structures"
	"strconv"
)

type MenuProviderInterface interface {
	Add(label string, handler func(ctx context.Context))
	Exit(label string)
	GetItems() []structures.MenuItem
	Find(key string) (structures.MenuItem, bool)
}

// MenuProvider numbers items in registration order starting at 1.
type MenuProvider struct {
	items []structures.MenuItem
}

func (mp *MenuProvider) Add(label string, handler func(ctx context.Context)) {
	mp.items = append(mp.items, structures.MenuItem{
		Key:     strconv.Itoa(len(mp.items) + 1),
		Label:   label,
		Handler: handler,
	})
}

func (mp *MenuProvider) Exit(label string) {
	mp.items = append(mp.items, structures.MenuItem{
		Key:   strconv.Itoa(len(mp.items) + 1),
		Label: label,
		Exit:  true,
	})
}

func (mp *MenuProvider) GetItems() []structures.MenuItem {
	return mp.items
}

func (mp *MenuProvider) Find(key string) (structures.MenuItem, bool) {
	for _, item := range mp.items {
		if item.Key == key {
			return item, true
		}
	}
	return structures.MenuItem{}, false
}

func NewMenuProvider() MenuProviderInterface {
	return &MenuProvider{}
}
