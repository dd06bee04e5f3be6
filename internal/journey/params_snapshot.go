package journey

import "lowtter/internal/core"

// Parameters describes the mapping constants for the HUD.
func (m Mapper) Parameters() core.ParameterSnapshot {
	c := m.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Camera",
			Params: []core.Parameter{
				core.FloatParam("camera_z_start", "Start depth", c.CameraZStart),
				core.FloatParam("camera_z_end", "End depth", c.CameraZEnd),
				core.FloatParam("camera_base_y", "Height", c.CameraBaseY),
				core.FloatParam("bob_amplitude", "Bob amplitude", c.BobAmplitude),
				core.FloatParam("bob_frequency", "Bob frequency", c.BobFrequency),
			},
		},
		{
			Name: "Immersion",
			Params: []core.Parameter{
				core.FloatParam("immersion_threshold", "Waterline", c.ImmersionThreshold),
				core.FloatParam("immersion_hysteresis", "Hysteresis", c.ImmersionHysteresis),
			},
		},
		{
			Name: "Fog",
			Params: []core.Parameter{
				core.FloatParam("fog_near", "Near", c.FogNear),
				core.FloatParam("fog_far_dry", "Far (air)", c.FogFarDry),
				core.FloatParam("fog_far_wet", "Far (water)", c.FogFarWet),
				core.ColorParam("fog_color_dry", "Colour (air)", c.FogColorDry),
				core.ColorParam("fog_color_wet", "Colour (water)", c.FogColorWet),
			},
		},
	}}
}
