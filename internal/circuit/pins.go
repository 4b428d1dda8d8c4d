package circuit

// PinType classifies a component pin.
type PinType string

const (
	PinPower   PinType = "power"
	PinGround  PinType = "ground"
	PinDigital PinType = "digital"
	PinAnalog  PinType = "analog"
	PinPWM     PinType = "pwm"
)

// Pin is one connection point on a component.
type Pin struct {
	Name        string
	Type        PinType
	Description string
}

// PinConfig lists the pins of a catalog component.
type PinConfig struct {
	ComponentID string
	Name        string
	Pins        []Pin
}

var pinConfigs = []PinConfig{
	{
		ComponentID: "leonardo-keyestudio",
		Name:        "Arduino Leonardo",
		Pins: []Pin{
			{"5V", PinPower, "5V power output"},
			{"3.3V", PinPower, "3.3V power output"},
			{"GND", PinGround, "Ground connection"},
			{"D9", PinPWM, "Digital pin 9 (PWM)"},
			{"D8", PinDigital, "Digital pin 8"},
			{"D7", PinDigital, "Digital pin 7"},
			{"A0", PinAnalog, "Analog pin A0"},
			{"A1", PinAnalog, "Analog pin A1"},
			{"A2", PinAnalog, "Analog pin A2"},
		},
	},
	{
		ComponentID: "led",
		Name:        "LED",
		Pins: []Pin{
			{"+", PinPower, "LED anode (+)"},
			{"-", PinGround, "LED cathode (-)"},
		},
	},
	{
		ComponentID: "resistor",
		Name:        "Resistor (220Ω)",
		Pins: []Pin{
			{"Pin1", PinPower, "Resistor pin 1"},
			{"Pin2", PinGround, "Resistor pin 2"},
		},
	},
	{
		ComponentID: "potentiometer",
		Name:        "Potentiometer (10kΩ)",
		Pins: []Pin{
			{"VCC", PinPower, "Power input (left pin)"},
			{"Wiper", PinAnalog, "Variable output (middle pin)"},
			{"GND", PinGround, "Ground (right pin)"},
		},
	},
	{
		ComponentID: "breadboard",
		Name:        "Breadboard",
		Pins: []Pin{
			{"Power+", PinPower, "Positive power rail"},
			{"Power-", PinGround, "Negative power rail"},
			{"Power+2", PinPower, "Positive power rail (bottom)"},
			{"Power-2", PinGround, "Negative power rail (bottom)"},
		},
	},
	{
		ComponentID: "jumper-cable",
		Name:        "Jumper Cable",
		Pins: []Pin{
			{"End1", PinPower, "Cable end 1"},
			{"End2", PinPower, "Cable end 2"},
		},
	},
}

// Pins returns the pin configuration of a component.
func Pins(componentID string) (PinConfig, bool) {
	for _, c := range pinConfigs {
		if c.ComponentID == componentID {
			return c, true
		}
	}
	return PinConfig{}, false
}

// HasPin reports whether a component exposes the named pin.
func HasPin(componentID, pin string) bool {
	cfg, ok := Pins(componentID)
	if !ok {
		return false
	}
	for _, p := range cfg.Pins {
		if p.Name == pin {
			return true
		}
	}
	return false
}
