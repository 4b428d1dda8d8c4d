package catalog

// seedComponents is the built-in component library.
var seedComponents = []Component{
	{
		ID:          "5v-motor",
		Name:        "5V DC Motor",
		Category:    "Actuator",
		Difficulty:  DifficultyIntermediate,
		Description: "A small direct current motor that converts electrical energy into mechanical rotation.",
		Quiz: []QuizQuestion{
			{
				Question: "What is the main function of a DC motor?",
				Options: [4]string{
					"Convert light to electricity",
					"Convert electrical energy to mechanical rotation",
					"Store electrical energy",
					"Amplify electrical signals",
				},
				CorrectIndex: 1,
				Explanation:  "DC motors convert electrical energy into mechanical rotational energy, making them perfect for creating movement in projects.",
			},
			{
				Question: "Why should you never connect a motor directly to a microcontroller pin?",
				Options: [4]string{
					"It will work fine",
					"The motor might run backwards",
					"The current draw can damage the microcontroller",
					"The motor will run too fast",
				},
				CorrectIndex: 2,
				Explanation:  "Motors draw much more current than microcontroller pins can safely provide. Always use a motor driver or transistor circuit.",
			},
			{
				Question: "What component should you add to protect against voltage spikes from motors?",
				Options: [4]string{
					"Resistor",
					"Capacitor",
					"Flyback diode",
					"LED",
				},
				CorrectIndex: 2,
				Explanation:  "Flyback diodes protect circuits from voltage spikes that occur when the motor stops, as the magnetic field collapses.",
			},
			{
				Question: "How can you control the direction of a DC motor?",
				Options: [4]string{
					"Change the voltage level",
					"Reverse the polarity",
					"Add more current",
					"Use PWM only",
				},
				CorrectIndex: 1,
				Explanation:  "Reversing the polarity (switching positive and negative connections) changes the direction of current flow and thus the rotation direction.",
			},
			{
				Question: "What does PWM control in a DC motor?",
				Options: [4]string{
					"Direction only",
					"Speed only",
					"Color",
					"Temperature",
				},
				CorrectIndex: 1,
				Explanation:  "PWM (Pulse Width Modulation) controls the effective voltage delivered to the motor, which controls its speed.",
			},
		},
	},
	{
		ID:          "arduino-micro",
		Name:        "Arduino Micro",
		Category:    "Microcontroller",
		Difficulty:  DifficultyAdvanced,
		Description: "A compact microcontroller board based on the ATmega32U4 with built-in USB connectivity.",
		Quiz: []QuizQuestion{
			{
				Question: "What makes the Arduino Micro special compared to other Arduino boards?",
				Options: [4]string{
					"It's the fastest Arduino",
					"It has built-in WiFi",
					"It has native USB connectivity",
					"It runs on 3.3V",
				},
				CorrectIndex: 2,
				Explanation:  "The Arduino Micro has a built-in USB controller (ATmega32U4), allowing it to appear as a USB device without additional chips.",
			},
			{
				Question: "How many digital I/O pins does the Arduino Micro have?",
				Options: [4]string{
					"14",
					"16",
					"18",
					"20",
				},
				CorrectIndex: 3,
				Explanation:  "The Arduino Micro has 20 digital I/O pins, more than the standard Arduino Uno which has 14.",
			},
			{
				Question: "What is the maximum safe current you should draw from a single Arduino pin?",
				Options: [4]string{
					"10mA",
					"20mA",
					"40mA",
					"100mA",
				},
				CorrectIndex: 1,
				Explanation:  "Each Arduino pin can safely provide up to 20mA of current. Exceeding this can damage the microcontroller.",
			},
			{
				Question: "What voltage do the Arduino Micro digital pins operate at?",
				Options: [4]string{
					"3.3V",
					"5V",
					"12V",
					"24V",
				},
				CorrectIndex: 1,
				Explanation:  "Arduino Micro digital pins operate at 5V logic levels for both input and output operations.",
			},
			{
				Question: "Which microcontroller chip powers the Arduino Micro?",
				Options: [4]string{
					"ATmega328P",
					"ATmega32U4",
					"ESP8266",
					"STM32",
				},
				CorrectIndex: 1,
				Explanation:  "The Arduino Micro uses the ATmega32U4 microcontroller, which includes native USB support.",
			},
		},
	},
	{
		ID:          "breadboard",
		Name:        "Breadboard",
		Category:    "Prototyping",
		Difficulty:  DifficultyBeginner,
		Description: "A solderless construction base used for building temporary electronic circuits and prototypes.",
		Quiz: []QuizQuestion{
			{
				Question: "How are the holes in a breadboard's terminal strips connected?",
				Options: [4]string{
					"All holes are connected",
					"Holes are connected vertically in columns",
					"Holes are connected horizontally in rows of 5",
					"No holes are connected",
				},
				CorrectIndex: 2,
				Explanation:  "In terminal strips, holes are connected horizontally in groups of 5, allowing easy component connections.",
			},
			{
				Question: "What is the purpose of the central channel in a breadboard?",
				Options: [4]string{
					"Decoration only",
					"To separate the two sides and place ICs",
					"For ventilation",
					"To make it easier to break",
				},
				CorrectIndex: 1,
				Explanation:  "The central channel separates the two sides and is specifically designed to accommodate IC chips spanning across it.",
			},
			{
				Question: "What do the power rails (red and black strips) typically carry?",
				Options: [4]string{
					"Data signals",
					"Positive and negative power supply",
					"Ground only",
					"Clock signals",
				},
				CorrectIndex: 1,
				Explanation:  "Power rails carry the positive power supply (Vcc) and ground (GND) to distribute power across your circuit.",
			},
			{
				Question: "What is the standard hole spacing on a breadboard?",
				Options: [4]string{
					"1.27mm",
					"2.54mm",
					"5.08mm",
					"10.16mm",
				},
				CorrectIndex: 1,
				Explanation:  "2.54mm (0.1 inch) is the standard spacing, matching the pin spacing of most electronic components.",
			},
			{
				Question: "What material are breadboard contacts typically made of?",
				Options: [4]string{
					"Copper",
					"Aluminum",
					"Phosphor Bronze",
					"Gold",
				},
				CorrectIndex: 2,
				Explanation:  "Phosphor bronze provides good electrical conductivity and spring properties for reliable connections.",
			},
		},
	},
	{
		ID:          "led",
		Name:        "LED (Light Emitting Diode)",
		Category:    "Output",
		Difficulty:  DifficultyBeginner,
		Description: "A semiconductor device that emits light when current flows through it in the forward direction.",
		Quiz: []QuizQuestion{
			{
				Question: "Which leg of an LED is typically longer?",
				Options: [4]string{
					"Cathode (negative)",
					"Anode (positive)",
					"Both are the same length",
					"It varies by color",
				},
				CorrectIndex: 1,
				Explanation:  "The anode (positive leg) is typically longer to help identify the correct polarity when connecting the LED.",
			},
			{
				Question: "Why do LEDs need current limiting resistors?",
				Options: [4]string{
					"To make them brighter",
					"To change their color",
					"To prevent excessive current and damage",
					"To make them blink",
				},
				CorrectIndex: 2,
				Explanation:  "LEDs have very low internal resistance and will draw excessive current without a limiting resistor, causing damage.",
			},
			{
				Question: "What happens if you connect an LED backwards?",
				Options: [4]string{
					"It will be brighter",
					"It will not light up",
					"It will change color",
					"It will explode",
				},
				CorrectIndex: 1,
				Explanation:  "LEDs only conduct (and emit light) when forward biased. Reverse connection blocks current flow.",
			},
			{
				Question: "What determines the color of an LED?",
				Options: [4]string{
					"The applied voltage",
					"The current through it",
					"The semiconductor material",
					"The resistor value",
				},
				CorrectIndex: 2,
				Explanation:  "Different semiconductor materials have different energy band gaps, which determine the color of emitted light.",
			},
			{
				Question: "What is the typical forward current rating for standard LEDs?",
				Options: [4]string{
					"5mA",
					"20mA",
					"50mA",
					"100mA",
				},
				CorrectIndex: 1,
				Explanation:  "Most standard LEDs are rated for 20mA forward current for optimal brightness and lifespan.",
			},
		},
	},
	{
		ID:          "jumper-cable",
		Name:        "Jumper Cable",
		Category:    "Connection",
		Difficulty:  DifficultyBeginner,
		Description: "Flexible wires with connectors used to establish electrical connections between components.",
		Quiz: []QuizQuestion{
			{
				Question: "What does \"male-to-female\" mean for jumper cables?",
				Options: [4]string{
					"One end has a pin, the other has a socket",
					"Different colors",
					"Different lengths",
					"Different materials",
				},
				CorrectIndex: 0,
				Explanation:  "Male connectors have protruding pins, while female connectors have sockets that accept pins.",
			},
			{
				Question: "Why is it important to use different colored jumper cables?",
				Options: [4]string{
					"They conduct electricity better",
					"For circuit organization and safety",
					"They are cheaper",
					"They last longer",
				},
				CorrectIndex: 1,
				Explanation:  "Different colors help organize circuits and prevent mistakes, especially for power (red) and ground (black) connections.",
			},
			{
				Question: "What happens if you use a jumper cable with insufficient current rating?",
				Options: [4]string{
					"Nothing, it will work fine",
					"The cable may overheat and fail",
					"It will work faster",
					"It will change color",
				},
				CorrectIndex: 1,
				Explanation:  "Using cables with insufficient current rating can cause overheating, voltage drops, and potential fire hazards.",
			},
			{
				Question: "Which type of jumper cable would you use to connect an Arduino pin to a breadboard?",
				Options: [4]string{
					"Male-to-male",
					"Female-to-male",
					"Female-to-female",
					"Any type works",
				},
				CorrectIndex: 1,
				Explanation:  "Arduino pins are male, breadboard holes are effectively female, so you need male-to-male or female-to-male cables.",
			},
			{
				Question: "What does AWG stand for in wire specifications?",
				Options: [4]string{
					"Advanced Wire Gauge",
					"American Wire Gauge",
					"Automatic Wire Generator",
					"Amplified Wire Grade",
				},
				CorrectIndex: 1,
				Explanation:  "AWG (American Wire Gauge) is a standard system for denoting wire diameter and current carrying capacity.",
			},
		},
	},
	{
		ID:          "potentiometer",
		Name:        "Potentiometer",
		Category:    "Input",
		Difficulty:  DifficultyIntermediate,
		Description: "A variable resistor with three terminals that can be used to control voltage or resistance.",
		Quiz: []QuizQuestion{
			{
				Question: "How many terminals does a potentiometer have?",
				Options: [4]string{
					"2",
					"3",
					"4",
					"5",
				},
				CorrectIndex: 1,
				Explanation:  "Potentiometers have three terminals: two for the ends of the resistive element and one for the wiper (center tap).",
			},
			{
				Question: "What happens when you turn a potentiometer knob?",
				Options: [4]string{
					"The total resistance changes",
					"The wiper position changes along the resistive track",
					"The voltage supply changes",
					"The current increases",
				},
				CorrectIndex: 1,
				Explanation:  "Turning the knob moves the wiper along the resistive track, changing the voltage division ratio.",
			},
			{
				Question: "In a voltage divider configuration, which terminal provides the variable output?",
				Options: [4]string{
					"Terminal 1",
					"Terminal 2 (wiper)",
					"Terminal 3",
					"Any terminal",
				},
				CorrectIndex: 1,
				Explanation:  "The wiper (center terminal) provides the variable voltage output in a voltage divider configuration.",
			},
			{
				Question: "What does \"linear taper\" mean in a potentiometer?",
				Options: [4]string{
					"The shape is linear",
					"Resistance changes proportionally with rotation",
					"It only works with DC",
					"It has three terminals",
				},
				CorrectIndex: 1,
				Explanation:  "Linear taper means the resistance changes proportionally with the amount of rotation, providing uniform control.",
			},
			{
				Question: "How should you connect a potentiometer to read analog values with Arduino?",
				Options: [4]string{
					"Connect all three terminals to Arduino pins",
					"Connect outer terminals to 5V and GND, wiper to analog pin",
					"Connect only the wiper to Arduino",
					"Connect it in series with LED",
				},
				CorrectIndex: 1,
				Explanation:  "For analog reading, connect the outer terminals to power and ground, and the wiper to an analog input pin.",
			},
		},
	},
	{
		ID:          "pushbutton",
		Name:        "Push Button",
		Category:    "Input",
		Difficulty:  DifficultyBeginner,
		Description: "A momentary switch that makes or breaks a connection when pressed and returns to its default state when released.",
		Quiz: []QuizQuestion{
			{
				Question: "What type of switch is a typical push button?",
				Options: [4]string{
					"Latching switch",
					"Momentary switch",
					"Toggle switch",
					"Rotary switch",
				},
				CorrectIndex: 1,
				Explanation:  "Push buttons are momentary switches - they only maintain their pressed state while being actively pressed.",
			},
			{
				Question: "Why do push buttons typically have 4 terminals?",
				Options: [4]string{
					"For different voltages",
					"For LED indicators",
					"For reliable connection (two pairs)",
					"For multiple functions",
				},
				CorrectIndex: 2,
				Explanation:  "Four terminals arranged in two pairs provide redundant connections for reliability and easier breadboard mounting.",
			},
			{
				Question: "What is \"switch bounce\" in push buttons?",
				Options: [4]string{
					"The button physically bouncing",
					"Multiple rapid on/off signals when pressed",
					"The button not working",
					"Electrical noise",
				},
				CorrectIndex: 1,
				Explanation:  "Switch bounce refers to the rapid making and breaking of contact that occurs when the button is pressed, creating multiple signals.",
			},
			{
				Question: "Why are pull-up resistors important with push buttons?",
				Options: [4]string{
					"To make the button brighter",
					"To provide a defined logic level when not pressed",
					"To increase current",
					"To change the button color",
				},
				CorrectIndex: 1,
				Explanation:  "Pull-up resistors ensure the input reads a defined HIGH state when the button is not pressed, preventing floating inputs.",
			},
			{
				Question: "What is debouncing in the context of push buttons?",
				Options: [4]string{
					"Cleaning the button",
					"Filtering out multiple rapid signals from switch bounce",
					"Making the button quieter",
					"Increasing button sensitivity",
				},
				CorrectIndex: 1,
				Explanation:  "Debouncing is the process of filtering out the rapid on/off signals caused by mechanical switch bounce to get clean digital signals.",
			},
		},
	},
	{
		ID:          "resistor",
		Name:        "Resistor",
		Category:    "Passive",
		Difficulty:  DifficultyBeginner,
		Description: "A passive component that opposes the flow of electric current, creating voltage drops and limiting current.",
		Quiz: []QuizQuestion{
			{
				Question: "What does Ohm's law state?",
				Options: [4]string{
					"V = I + R",
					"V = I × R",
					"V = I / R",
					"V = R / I",
				},
				CorrectIndex: 1,
				Explanation:  "Ohm's law states that Voltage equals Current times Resistance (V = I × R).",
			},
			{
				Question: "What happens if you exceed a resistor's power rating?",
				Options: [4]string{
					"It works more efficiently",
					"It may overheat and fail",
					"It changes resistance value",
					"Nothing happens",
				},
				CorrectIndex: 1,
				Explanation:  "Exceeding the power rating causes the resistor to overheat, potentially changing value or failing completely.",
			},
			{
				Question: "What do the color bands on a resistor indicate?",
				Options: [4]string{
					"Temperature rating",
					"Power rating",
					"Resistance value and tolerance",
					"Manufacturing date",
				},
				CorrectIndex: 2,
				Explanation:  "Color bands indicate the resistance value, multiplier, and tolerance of the resistor using a standardized color code.",
			},
			{
				Question: "In an LED circuit, what is the primary purpose of a resistor?",
				Options: [4]string{
					"To make the LED brighter",
					"To limit current and prevent LED damage",
					"To change LED color",
					"To store energy",
				},
				CorrectIndex: 1,
				Explanation:  "Current-limiting resistors prevent excessive current that would damage LEDs, ensuring safe operation.",
			},
			{
				Question: "What does a 5% tolerance rating mean?",
				Options: [4]string{
					"The resistor works 5% of the time",
					"The actual resistance can vary ±5% from the marked value",
					"It can handle 5% more power",
					"It lasts 5% longer",
				},
				CorrectIndex: 1,
				Explanation:  "Tolerance indicates how much the actual resistance can vary from the marked value - ±5% is typical for standard resistors.",
			},
		},
	},
	{
		ID:          "leonardo-keyestudio",
		Name:        "Arduino Leonardo (Keyestudio)",
		Category:    "Microcontroller",
		Difficulty:  DifficultyAdvanced,
		Description: "A versatile microcontroller board based on the ATmega32U4 with built-in USB communication.",
		Quiz: []QuizQuestion{
			{
				Question: "What makes the Arduino Leonardo different from the Arduino Uno?",
				Options: [4]string{
					"It has more digital pins",
					"It has built-in USB communication without a separate chip",
					"It runs at a higher clock speed",
					"It uses a different programming language",
				},
				CorrectIndex: 1,
				Explanation:  "The Leonardo has built-in USB communication via the ATmega32U4 microcontroller, eliminating the need for a separate USB-to-serial converter chip like the Uno uses.",
			},
			{
				Question: "How many analog input pins does the Arduino Leonardo have?",
				Options: [4]string{
					"6 pins",
					"8 pins",
					"10 pins",
					"12 pins",
				},
				CorrectIndex: 3,
				Explanation:  "The Arduino Leonardo has 12 analog input pins (A0-A11), which is more than many other Arduino boards.",
			},
			{
				Question: "What unique capability does the Leonardo have for USB communication?",
				Options: [4]string{
					"It can only send data to a computer",
					"It can emulate USB devices like keyboards and mice",
					"It requires special drivers for USB communication",
					"It cannot communicate via USB",
				},
				CorrectIndex: 1,
				Explanation:  "The Leonardo can emulate USB HID devices like keyboards and mice, making it perfect for projects that need to control a computer directly.",
			},
			{
				Question: "What is the recommended input voltage range for the Arduino Leonardo?",
				Options: [4]string{
					"3-5V",
					"5-9V",
					"7-12V",
					"12-20V",
				},
				CorrectIndex: 2,
				Explanation:  "The recommended input voltage range is 7-12V. Going outside this range can damage the board or cause unreliable operation.",
			},
			{
				Question: "How much flash memory does the Arduino Leonardo have available for user programs?",
				Options: [4]string{
					"32KB total",
					"28KB (32KB minus 4KB bootloader)",
					"16KB",
					"64KB",
				},
				CorrectIndex: 1,
				Explanation:  "The Leonardo has 32KB of flash memory total, but 4KB is reserved for the bootloader, leaving 28KB available for user programs.",
			},
		},
	},
}
