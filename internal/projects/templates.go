package projects

import (
	"slices"
	"strings"
	"time"

	"github.com/abhisek/circuitspace/internal/catalog"
	"github.com/abhisek/circuitspace/internal/conversation"
	"github.com/abhisek/circuitspace/internal/tutorial"
	"golang.org/x/text/cases"
)

// Category groups templates by how much experience they assume.
type Category string

const (
	CategoryBeginner     Category = "beginner"
	CategoryIntermediate Category = "intermediate"
	CategoryAdvanced     Category = "advanced"
)

// Template is a starter project a user can copy into the workspace.
type Template struct {
	ID                 string
	Name               string
	Description        string
	Category           Category
	EstimatedTime      string
	Difficulty         int // 1..5
	LearningObjectives []string
	Tags               []string
	Components         []Part
	Code               string
}

var templates = []Template{
	{
		ID:            "smart-led-controller",
		Name:          "Smart LED Controller",
		Description:   "Build an intelligent LED strip controller with multiple lighting modes, remote control capabilities, and smartphone integration.",
		Category:      CategoryIntermediate,
		EstimatedTime: "2-3 hours",
		Difficulty:    3,
		LearningObjectives: []string{
			"Understanding addressable LED strips (WS2812B)",
			"Arduino programming basics",
			"Button debouncing techniques",
			"State machine programming",
			"PWM and color mixing",
		},
		Tags: []string{"led", "lighting", "arduino", "remote-control", "iot"},
		Components: []Part{
			{ID: "arduino-uno", Name: "Arduino Uno", Description: "Main microcontroller board", Price: "$25", Category: "microcontroller"},
			{ID: "led-strip-ws2812b", Name: "WS2812B LED Strip", Description: "Addressable RGB LED strip - 1 meter, 30 LEDs", Price: "$15", Category: "output"},
			{ID: "push-button", Name: "Push Button", Description: "Tactile push button for mode switching", Price: "$1", Category: "input"},
			{ID: "potentiometer", Name: "Potentiometer", Description: "10k rotary potentiometer for brightness", Price: "$2", Category: "input"},
			{ID: "breadboard", Name: "Breadboard", Description: "Half-size solderless breadboard", Price: "$5", Category: "prototyping"},
		},
		Code: `#include <FastLED.h>

#define LED_PIN 6
#define BUTTON_PIN 2
#define POT_PIN A0
#define NUM_LEDS 30

CRGB leds[NUM_LEDS];
int mode = 0;
bool lastButton = HIGH;

void setup() {
  FastLED.addLeds<WS2812B, LED_PIN, GRB>(leds, NUM_LEDS);
  pinMode(BUTTON_PIN, INPUT_PULLUP);
}

void loop() {
  bool button = digitalRead(BUTTON_PIN);
  if (button == LOW && lastButton == HIGH) {
    mode = (mode + 1) % 3;
    delay(50);
  }
  lastButton = button;

  FastLED.setBrightness(map(analogRead(POT_PIN), 0, 1023, 0, 255));
  switch (mode) {
    case 0: fill_solid(leds, NUM_LEDS, CRGB::White); break;
    case 1: fill_rainbow(leds, NUM_LEDS, millis() / 20, 8); break;
    case 2: fill_solid(leds, NUM_LEDS, CRGB::Black); break;
  }
  FastLED.show();
}`,
	},
	{
		ID:            "temperature-monitor",
		Name:          "Temperature Monitor System",
		Description:   "Create a digital temperature monitoring system with OLED display, data logging, and alert system.",
		Category:      CategoryBeginner,
		EstimatedTime: "1-2 hours",
		Difficulty:    2,
		LearningObjectives: []string{
			"Analog sensor reading",
			"OLED display control",
			"Serial communication",
			"Temperature calculations",
			"Basic data visualization",
		},
		Tags: []string{"sensor", "temperature", "display", "monitoring", "beginner"},
		Components: []Part{
			{ID: "arduino-nano", Name: "Arduino Nano", Description: "Compact microcontroller board", Price: "$20", Category: "microcontroller"},
			{ID: "oled-display", Name: "OLED Display", Description: "0.96\" I2C OLED display", Price: "$8", Category: "output"},
			{ID: "temp-sensor", Name: "TMP36 Temperature Sensor", Description: "Analog temperature sensor", Price: "$2", Category: "sensor"},
			{ID: "breadboard", Name: "Breadboard", Description: "Half-size solderless breadboard", Price: "$5", Category: "prototyping"},
		},
		Code: `#include <Wire.h>
#include <Adafruit_SSD1306.h>

#define TEMP_PIN A0
#define SAMPLES 10

Adafruit_SSD1306 display(128, 64, &Wire, -1);
float history[SAMPLES];
int head = 0;

float readTemperature() {
  float voltage = analogRead(TEMP_PIN) * (5.0 / 1023.0);
  return (voltage - 0.5) * 100.0;
}

float getAverageTemperature() {
  float sum = 0;
  for (int i = 0; i < SAMPLES; i++) sum += history[i];
  return sum / SAMPLES;
}

void setup() {
  Serial.begin(9600);
  display.begin(SSD1306_SWITCHCAPVCC, 0x3C);
}

void loop() {
  float temp = readTemperature();
  history[head] = temp;
  head = (head + 1) % SAMPLES;

  display.clearDisplay();
  display.setCursor(0, 0);
  display.print(temp);
  display.print(" C");
  display.display();

  Serial.print("Temperature: ");
  Serial.print(temp);
  Serial.print("C, Average: ");
  Serial.print(getAverageTemperature());
  Serial.println("C");
  delay(1000);
}`,
	},
	{
		ID:            "iot-plant-monitor",
		Name:          "IoT Plant Care Monitor",
		Description:   "Build an advanced plant monitoring system with WiFi connectivity, mobile alerts, and automated watering.",
		Category:      CategoryAdvanced,
		EstimatedTime: "4-6 hours",
		Difficulty:    5,
		LearningObjectives: []string{
			"ESP32 WiFi programming",
			"Multiple sensor integration",
			"Web server development",
			"Real-time data transmission",
			"Automated control systems",
			"Mobile app integration",
		},
		Tags: []string{"iot", "wifi", "sensors", "automation", "plants", "advanced"},
		Components: []Part{
			{ID: "esp32", Name: "ESP32 DevKit", Description: "WiFi/Bluetooth microcontroller", Price: "$12", Category: "microcontroller"},
			{ID: "soil-moisture", Name: "Soil Moisture Sensor", Description: "Capacitive soil moisture sensor", Price: "$6", Category: "sensor"},
			{ID: "dht22", Name: "DHT22 Sensor", Description: "Temperature and humidity sensor", Price: "$8", Category: "sensor"},
			{ID: "light-sensor", Name: "LDR Light Sensor", Description: "Light dependent resistor", Price: "$2", Category: "sensor"},
			{ID: "water-pump", Name: "Mini Water Pump", Description: "3V DC mini water pump", Price: "$10", Category: "actuator"},
			{ID: "relay-module", Name: "Relay Module", Description: "Single channel 5V relay", Price: "$4", Category: "control"},
		},
		Code: `#include <WiFi.h>
#include <WebServer.h>
#include <DHT.h>

#define SOIL_PIN 34
#define LIGHT_PIN 35
#define DHT_PIN 4
#define PUMP_PIN 26
#define DRY_THRESHOLD 1800

DHT dht(DHT_PIN, DHT22);
WebServer server(80);

void handleStatus() {
  String body = "{\"soil\":" + String(analogRead(SOIL_PIN)) +
                ",\"light\":" + String(analogRead(LIGHT_PIN)) +
                ",\"temp\":" + String(dht.readTemperature()) +
                ",\"humidity\":" + String(dht.readHumidity()) + "}";
  server.send(200, "application/json", body);
}

void setup() {
  pinMode(PUMP_PIN, OUTPUT);
  dht.begin();
  WiFi.begin("your-ssid", "your-password");
  while (WiFi.status() != WL_CONNECTED) delay(500);
  server.on("/status", handleStatus);
  server.begin();
}

void loop() {
  server.handleClient();
  digitalWrite(PUMP_PIN, analogRead(SOIL_PIN) > DRY_THRESHOLD ? HIGH : LOW);
  delay(200);
}`,
	},
	{
		ID:            "home-security-system",
		Name:          "Smart Home Security System",
		Description:   "Create a comprehensive home security system with motion detection, door/window sensors, and smartphone notifications.",
		Category:      CategoryAdvanced,
		EstimatedTime: "5-8 hours",
		Difficulty:    4,
		LearningObjectives: []string{
			"Multiple sensor integration",
			"State machine programming",
			"Wireless communication",
			"Security system logic",
			"Alert mechanisms",
		},
		Tags: []string{"security", "motion", "sensors", "alarm", "iot"},
		Components: []Part{
			{ID: "esp32", Name: "ESP32 DevKit", Description: "WiFi/Bluetooth microcontroller", Price: "$12", Category: "microcontroller"},
			{ID: "pir-sensor", Name: "PIR Motion Sensor", Description: "HC-SR501 passive infrared sensor", Price: "$3", Category: "sensor"},
			{ID: "door-sensor", Name: "Magnetic Door Sensor", Description: "Reed switch door/window contact", Price: "$3", Category: "sensor"},
			{ID: "buzzer", Name: "Piezo Buzzer", Description: "Active buzzer for alarms", Price: "$1", Category: "output"},
			{ID: "oled-display", Name: "OLED Display", Description: "0.96\" I2C OLED display", Price: "$8", Category: "output"},
		},
		Code: `#define PIR_PIN 13
#define DOOR_PIN 14
#define BUZZER_PIN 27

enum State { DISARMED, ARMED, TRIGGERED };
State state = ARMED;

void setup() {
  pinMode(PIR_PIN, INPUT);
  pinMode(DOOR_PIN, INPUT_PULLUP);
  pinMode(BUZZER_PIN, OUTPUT);
  Serial.begin(115200);
}

void loop() {
  bool motion = digitalRead(PIR_PIN) == HIGH;
  bool doorOpen = digitalRead(DOOR_PIN) == HIGH;

  switch (state) {
    case ARMED:
      if (motion || doorOpen) {
        state = TRIGGERED;
        Serial.println("ALERT: intrusion detected");
      }
      break;
    case TRIGGERED:
      digitalWrite(BUZZER_PIN, HIGH);
      break;
    case DISARMED:
      digitalWrite(BUZZER_PIN, LOW);
      break;
  }
  delay(100);
}`,
	},
	leonardoTemplate(),
}

// leonardoTemplate builds the guided dimmer project from the catalog parts
// and the final tutorial sketch.
func leonardoTemplate() Template {
	t := Template{
		ID:            conversation.LeonardoLEDDimmer,
		Name:          "Leonardo LED Dimmer",
		Description:   "Dim an LED with a potentiometer on an Arduino Leonardo, guided step by step from wiring to upload.",
		Category:      CategoryBeginner,
		EstimatedTime: "45 minutes",
		Difficulty:    1,
		LearningObjectives: []string{
			"Reading analog inputs",
			"PWM output with analogWrite",
			"Mapping value ranges",
			"Serial debugging",
		},
		Tags: []string{"led", "potentiometer", "leonardo", "pwm", "beginner"},
	}
	ids := []string{"leonardo-keyestudio", "breadboard", "led", "resistor", "potentiometer", "jumper-cable"}
	for _, id := range ids {
		c, ok := catalog.Get(id)
		if !ok {
			continue
		}
		t.Components = append(t.Components, Part{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Category:    c.Category,
		})
	}
	if n := len(tutorial.LeonardoDimmer); n > 0 {
		t.Code = tutorial.LeonardoDimmer[n-1].Code
	}
	return t
}

// Templates returns every template in display order.
func Templates() []Template {
	return slices.Clone(templates)
}

// TemplateByID returns the template with the given id.
func TemplateByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// TemplatesByCategory returns templates in the given category.
func TemplatesByCategory(c Category) []Template {
	var out []Template
	for _, t := range templates {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// TemplatesByTag returns templates carrying the exact tag.
func TemplatesByTag(tag string) []Template {
	var out []Template
	for _, t := range templates {
		if slices.Contains(t.Tags, tag) {
			out = append(out, t)
		}
	}
	return out
}

// SearchTemplates matches query against name, description and tags,
// ignoring case. An empty query matches everything.
func SearchTemplates(query string) []Template {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return Templates()
	}
	var out []Template
	for _, t := range templates {
		if strings.Contains(fold.String(t.Name), q) || strings.Contains(fold.String(t.Description), q) ||
			slices.ContainsFunc(t.Tags, func(tag string) bool { return strings.Contains(fold.String(tag), q) }) {
			out = append(out, t)
		}
	}
	return out
}

// NewProject turns a template into a fresh workspace project.
func (t Template) NewProject(id string, ts time.Time) Project {
	return Project{
		ID:          id,
		Name:        t.Name,
		Description: t.Description,
		Components:  slices.Clone(t.Components),
		Code:        t.Code,
		CreatedAt:   ts,
		UpdatedAt:   ts,
		ChatHistory: []ChatMessage{},
	}
}
