package tutorial

import "strings"

const (
	sketchHeader = `/*
  Arduino Leonardo LED Dimmer
  Controls the brightness of an LED with a potentiometer.

  Hardware:
  - Arduino Leonardo
  - LED on pin 9 (PWM capable)
  - Potentiometer on pin A0
  - 220 ohm resistor for the LED
*/`

	sketchPins = `// Pin definitions
const int potPin = A0;      // Potentiometer on analog pin A0
const int ledPin = 9;       // LED on digital pin 9 (PWM capable)`

	sketchSetup = `void setup() {
  // Start serial communication for debugging
  Serial.begin(9600);

  // LED pin is an output
  pinMode(ledPin, OUTPUT);

  // Analog pins are inputs by default
  Serial.println("Arduino Leonardo LED Dimmer started!");
}`

	loopRead = `void loop() {
  // Read the potentiometer (0-1023)
  int potValue = analogRead(potPin);
}`

	loopPWM = `void loop() {
  // Read the potentiometer (0-1023)
  int potValue = analogRead(potPin);

  // Map the value to the PWM range (0-255)
  int brightness = map(potValue, 0, 1023, 0, 255);

  // Set the LED brightness
  analogWrite(ledPin, brightness);
}`

	loopDebug = `void loop() {
  // Read the potentiometer (0-1023)
  int potValue = analogRead(potPin);

  // Map the value to the PWM range (0-255)
  int brightness = map(potValue, 0, 1023, 0, 255);

  // Set the LED brightness
  analogWrite(ledPin, brightness);

  // Debug output
  Serial.print("Potentiometer: ");
  Serial.print(potValue);
  Serial.print(" | LED brightness: ");
  Serial.println(brightness);

  // Short pause for stable readings
  delay(50);
}`
)

func sketch(parts ...string) string {
	return strings.Join(parts, "\n\n")
}

// LeonardoDimmer is the code tutorial for the LED dimmer project.
var LeonardoDimmer = []Step{
	{
		ID:          "step-1-setup",
		Title:       "Step 1: Structure & comments",
		Description: "Start with the basic structure and documentation.",
		Code:        sketch(sketchHeader),
		Explanation: "Good code starts with documentation. The header says what the project does and which hardware it uses.",
	},
	{
		ID:          "step-2-pins",
		Title:       "Step 2: Pin definitions",
		Description: "Define the hardware pins for the project.",
		Code:        sketch(sketchHeader, sketchPins),
		Explanation: "const int declares constants for the pins. Pin 9 supports PWM (pulse width modulation), which is how we control LED brightness.",
	},
	{
		ID:          "step-3-setup",
		Title:       "Step 3: The setup() function",
		Description: "setup() runs once when the Arduino starts.",
		Code:        sketch(sketchHeader, sketchPins, sketchSetup),
		Explanation: "Serial.begin() opens the connection to the computer. pinMode() makes pin 9 an output for the LED.",
	},
	{
		ID:          "step-4-loop-basic",
		Title:       "Step 4: Basic loop",
		Description: "loop() runs forever and holds the main logic.",
		Code:        sketch(sketchHeader, sketchPins, sketchSetup, loopRead),
		Explanation: "analogRead() returns a value between 0 and 1023 depending on the potentiometer position.",
	},
	{
		ID:          "step-5-pwm",
		Title:       "Step 5: Mapping & PWM",
		Description: "Convert the reading and drive the LED.",
		Code:        sketch(sketchHeader, sketchPins, sketchSetup, loopPWM),
		Explanation: "map() scales 0-1023 down to 0-255, the range analogWrite() expects for PWM output.",
	},
	{
		ID:          "step-6-debugging",
		Title:       "Step 6: Debugging",
		Description: "Print the values so you can watch them in the serial monitor.",
		Code:        sketch(sketchHeader, sketchPins, sketchSetup, loopDebug),
		Explanation: "Serial.print() shows the current values in the serial monitor. delay(50) keeps the readings stable and the output readable.",
	},
}
