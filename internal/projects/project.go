package projects

import (
	"time"

	"github.com/abhisek/circuitspace/internal/conversation"
)

// Part is a hardware component used by a project.
type Part struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Price          string            `json:"price,omitempty"`
	Pinouts        []string          `json:"pinouts,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// ChatMessage is one entry of the project chat.
type ChatMessage struct {
	ID        string            `json:"id"`
	Role      conversation.Role `json:"type"`
	Content   string            `json:"content"`
	Timestamp time.Time         `json:"timestamp"`

	// StepID links AI messages to the conversation step that produced them.
	StepID string `json:"stepId,omitempty"`

	CodeGenerated        string   `json:"codeGenerated,omitempty"`
	ComponentSuggestions []string `json:"componentSuggestions,omitempty"`
}

// Project is the project currently open in the workspace.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Components  []Part        `json:"components"`
	Code        string        `json:"code"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	ChatHistory []ChatMessage `json:"chatHistory"`

	// Conversation is the saved cursor of the scripted walkthrough, if one
	// is running.
	Conversation *conversation.State `json:"conversation,omitempty"`
}

const defaultCode = `#include <FastLED.h>

#define LED_PIN 6
#define NUM_LEDS 30
#define BRIGHTNESS 100

CRGB leds[NUM_LEDS];

void setup() {
  FastLED.addLeds<WS2812B, LED_PIN, GRB>(leds, NUM_LEDS);
  FastLED.setBrightness(BRIGHTNESS);
  Serial.begin(9600);
  Serial.println("Circuitspace LED Controller Started!");
}

void loop() {
  // Rainbow effect
  for (int i = 0; i < NUM_LEDS; i++) {
    leds[i] = CHSV(i * 8, 255, 255);
  }
  FastLED.show();
  delay(50);
}`

// DefaultProject returns the starter project shown on first run.
func DefaultProject(now time.Time) Project {
	return Project{
		ID:          "default",
		Name:        "Smart LED Controller",
		Description: "An intelligent LED strip controller with multiple lighting modes and remote control capabilities",
		Components: []Part{
			{
				ID:          "arduino-uno",
				Name:        "Arduino Uno",
				Description: "Main microcontroller board",
				Price:       "$25",
				Category:    "microcontroller",
				Pinouts:     []string{"D0-D13", "A0-A5", "5V", "3.3V", "GND"},
				Specifications: map[string]string{
					"MCU":          "ATmega328P",
					"Clock Speed":  "16 MHz",
					"Flash Memory": "32 KB",
					"SRAM":         "2 KB",
					"EEPROM":       "1 KB",
				},
			},
			{
				ID:          "led-strip",
				Name:        "WS2812B LED Strip",
				Description: "Addressable RGB LED strip - 1 meter, 30 LEDs",
				Price:       "$15",
				Category:    "output",
				Pinouts:     []string{"VCC", "GND", "Data In", "Data Out"},
				Specifications: map[string]string{
					"LEDs per meter":  "30",
					"Voltage":         "5V",
					"Current per LED": "50mA",
					"Color depth":     "24-bit",
				},
			},
		},
		Code:        defaultCode,
		CreatedAt:   now,
		UpdatedAt:   now,
		ChatHistory: []ChatMessage{},
	}
}
