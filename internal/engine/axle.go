package engine

import "github.com/piwi3910/TetraLog/internal/model"

// CalculateAxleLoads splits the loaded weight between the front and rear
// axle with a two-support static beam model.
//
// The load's centre of gravity along the depth axis is the weight-averaged
// centre of every placed box. The rear axle carries the share given by the
// lever arm from the front axle; the front axle carries the rest. An empty
// bay yields (0, 0). The container must have AxleRear > AxleFront.
func CalculateAxleLoads(c *model.Container) (front, rear float64) {
	total := c.TotalWeight()
	if total == 0 {
		return 0, 0
	}

	wheelbase := c.AxleRear - c.AxleFront
	rear = total * ((LoadCenter(c) - c.AxleFront) / wheelbase)
	front = total - rear
	return front, rear
}

// LoadCenter returns the depth coordinate of the loaded centre of gravity,
// or 0 for an empty bay.
func LoadCenter(c *model.Container) float64 {
	var total, moment float64
	for _, it := range c.Placed {
		total += it.Weight
		moment += it.Weight * (it.Position.Y + it.EffectiveDims().D/2)
	}
	if total == 0 {
		return 0
	}
	return moment / total
}

// Summarize computes the dashboard figures for a packed container.
// requested is the number of units the manifest asked for.
func Summarize(c *model.Container, requested int) model.LoadSummary {
	front, rear := CalculateAxleLoads(c)
	return model.LoadSummary{
		Requested:   requested,
		Fitted:      len(c.Placed),
		UsedVolume:  c.UsedVolume(),
		TotalVolume: c.TotalVolume(),
		TotalWeight: c.TotalWeight(),
		MaxWeight:   c.MaxWeight,
		FrontAxle:   front,
		RearAxle:    rear,
	}
}
