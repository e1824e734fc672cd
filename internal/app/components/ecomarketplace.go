package components

import (
	"strconv"

	"github.com/vcrobe/ecomarket/runtime"
	"github.com/vcrobe/ecomarket/vdom"
)

const (
	Title = "Экологический Маркетплейс"
	Intro = "Добро пожаловать в мир экологически чистых продуктов!"
)

const (
	containerClass = "container mx-auto p-4"
	titleClass     = "text-4xl font-bold text-center text-green-600"
	introClass     = "mt-4 text-lg text-gray-700"
	gridClass      = "mt-8 grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-4"
)

// EcoMarketplace is the landing page: a heading, an introduction and a
// responsive grid of feature cards. It has no state and renders the same
// tree every time.
type EcoMarketplace struct {
	runtime.ComponentBase
}

// FeatureKey is the child key of the i-th feature card.
func FeatureKey(i int) string {
	return "feature-" + strconv.Itoa(i)
}

func (p *EcoMarketplace) Render(r runtime.Renderer) *vdom.VNode {
	cards := make([]*vdom.VNode, 0, len(features))
	for i, f := range features {
		cards = append(cards, r.RenderChild(FeatureKey(i), &FeatureCard{Feature: f}))
	}

	return vdom.Div(vdom.Class(containerClass),
		vdom.Heading(1, Title, vdom.Class(titleClass)),
		vdom.Paragraph(Intro, vdom.Class(introClass)),
		vdom.Div(vdom.Class(gridClass), cards...),
	)
}
