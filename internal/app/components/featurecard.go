package components

import (
	"github.com/vcrobe/ecomarket/runtime"
	"github.com/vcrobe/ecomarket/vdom"
)

// Feature is the text of one card in the features grid.
type Feature struct {
	Title       string
	Description string
}

var features = [...]Feature{
	{
		Title:       "Местные Фермеры",
		Description: "Найдите продукты напрямую от местных фермеров в вашем городе.",
	},
	{
		Title:       "Эко Продукты",
		Description: "Покупайте экологически чистые продукты, которые полезны для вас и окружающей среды.",
	},
	{
		Title:       "Поддержка Сообщества",
		Description: "Поддержите свое местное сообщество, покупая у местных производителей.",
	},
}

// Features returns a copy of the landing page feature list, in display order.
func Features() []Feature {
	out := make([]Feature, len(features))
	copy(out, features[:])
	return out
}

const (
	cardClass            = "p-4 border rounded-lg shadow-lg"
	cardTitleClass       = "text-2xl font-semibold"
	cardDescriptionClass = "mt-2"
)

// FeatureCard renders one bordered card with a title and a description.
type FeatureCard struct {
	runtime.ComponentBase

	Feature Feature
}

func (c *FeatureCard) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(vdom.Class(cardClass),
		vdom.Heading(2, c.Feature.Title, vdom.Class(cardTitleClass)),
		vdom.Paragraph(c.Feature.Description, vdom.Class(cardDescriptionClass)),
	)
}
