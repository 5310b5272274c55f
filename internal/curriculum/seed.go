package curriculum

func init() {
	c = buildCatalog(seedSubjects())
}

// seedSubjects returns the static curriculum catalog. Lesson IDs are
// referenced by dependency lists and by stored progress, so they must
// never change once shipped.
func seedSubjects() []Subject {
	return []Subject{
		{
			ID:    "chemistry",
			Name:  "Chemistry",
			Units: chemistryUnits(),
		},
		{
			ID:    "anatomy",
			Name:  "Anatomy & Physiology",
			Units: anatomyUnits(),
		},
	}
}

func chemistryUnits() []Unit {
	return []Unit{
		{
			ID:    "unit1",
			Title: "Unit 1: Foundations of Chemistry",
			Lessons: []Lesson{
				{
					ID:           "l1-1",
					Title:        "SI Units",
					Dependencies: nil,
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "Welcome to the World of Measurement!",
							Content: "In chemistry, precise measurements are everything! To make sure scientists all over the world are on the same page, we use a standard system called the **International System of Units**, or *SI units*. It's like a universal language for measurement.",
						},
						{
							Kind:    SlideText,
							Title:   "Key Metric Units",
							Content: "While there are seven official SI base units, in chemistry we frequently use a core set of metric units. The most common are the **meter (m)** for length, **gram (g)** for mass, **second (s)** for time, and **liter (L)** for volume. We'll also use **kelvin (K)** for temperature and the **mole (mol)** for the amount of substance. These units form the foundation for all our calculations!",
						},
					},
				},
				{
					ID:           "l1-2",
					Title:        "Significant Figures",
					Dependencies: []string{"l1-1"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "What Are Significant Figures?",
							Content: "Significant figures (or *sig figs*) are the digits in a number that are reliable and necessary to indicate the quantity of something. They represent the **precision** of a measurement.",
						},
						{
							Kind:    SlideText,
							Title:   "The Rules",
							Content: "1. Non-zero digits are *always* significant.\n2. Zeros between non-zero digits are significant (e.g., in `101`, all 3 digits are significant).\n3. Leading zeros are *never* significant (e.g., `0.05` has only one sig fig).\n4. Trailing zeros are significant *only if* the number contains a decimal point (e.g., `1.20` has three sig figs, but `120` only has two).",
						},
					},
				},
				{
					ID:           "l1-3",
					Title:        "Dimensional Analysis",
					Dependencies: []string{"l1-2"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "The Factor-Label Method",
							Content: "Dimensional analysis, also known as the **factor-label method**, is a powerful problem-solving technique for converting units. It involves multiplying a given value by *conversion factors* to cancel out unwanted units and leave you with the desired unit.",
						},
						{
							Kind:    SlideTable,
							Title:   "Example: Kilometers to Meters",
							Content: "Start | Conversion Factor | Result\n2.5 km | 1000 m / 1 km | = 2500 m",
						},
						{
							Kind:    SlideText,
							Content: "Notice how the `km` unit in the starting value cancels out with the `km` unit in the denominator of the conversion factor, leaving only `m` in the final answer. It's a foolproof way to make sure your conversions are set up correctly!",
						},
					},
				},
				{
					ID:           "l1-4",
					Title:        "Density",
					Dependencies: []string{"l1-3"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "What is Density?",
							Content: "Density is an *intensive property* of matter, meaning it doesn't depend on the amount of substance you have. It's defined as the ratio of an object's **mass** to its **volume**.",
						},
						{
							Kind:    SlideText,
							Title:   "The Formula",
							Content: "The formula for density is: \n `Density (ρ) = Mass (m) / Volume (V)` \n\n Common units for density are grams per cubic centimeter (`g/cm³`) for solids, and grams per milliliter (`g/mL`) for liquids.",
						},
					},
				},
			},
		},
		{
			ID:    "unit2",
			Title: "Unit 2: Matter & Energy",
			Lessons: []Lesson{
				{
					ID:           "l2-1",
					Title:        "States of Matter",
					Dependencies: []string{"l1-4"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "Solid, Liquid, Gas",
							Content: "Matter typically exists in one of three states: **solid**, **liquid**, or **gas**. The state of a substance depends on its temperature and pressure, which affect how its particles are arranged and how they move.",
						},
						{
							Kind:    SlideImage,
							Title:   "Particle Arrangement",
							Content: "A clear, simple diagram showing three labeled boxes side-by-side: 'Solid', 'Liquid', and 'Gas'. In the 'Solid' box, draw particles as small circles arranged in a tight, orderly, crystalline lattice. In the 'Liquid' box, show the same particles close together but randomly arranged and able to move past one another. In the 'Gas' box, show the particles far apart, moving randomly and rapidly in all directions.",
						},
					},
				},
				{
					ID:           "l2-2",
					Title:        "Classification of Matter",
					Dependencies: []string{"l2-1"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "Pure Substances vs. Mixtures",
							Content: "All matter can be classified into two main categories: **pure substances** and **mixtures**.\n\n*Pure substances* have a uniform and definite composition (e.g., water, sugar). *Mixtures* are physical blends of two or more substances (e.g., salt water, air).",
						},
						{
							Kind:    SlideImage,
							Title:   "Matter Flowchart",
							Content: "A clean, easy-to-read flowchart. Start with a box at the top labeled 'Matter'. It should branch down to two boxes: 'Pure Substances' and 'Mixtures'. The 'Pure Substances' box then branches to 'Elements' and 'Compounds'. The 'Mixtures' box branches to 'Homogeneous' and 'Heterogeneous'. Use simple lines and clear, sans-serif text.",
						},
					},
				},
				{
					ID:           "l2-3",
					Title:        "Physical & Chemical Changes",
					Dependencies: []string{"l2-2"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "Physical Changes",
							Content: "A **physical change** is a change in a substance that does *not* involve a change in the identity of the substance. Examples include changes of state (melting, boiling), size, or shape.",
						},
						{
							Kind:    SlideText,
							Title:   "Chemical Changes",
							Content: "A **chemical change** (or chemical reaction) is a change where one or more substances are converted into different substances. Signs of a chemical change include color change, formation of a gas or precipitate, or release of heat or light.",
						},
					},
				},
			},
		},
		{
			ID:    "unit3",
			Title: "Unit 3: Atomic Structure",
			Lessons: []Lesson{
				{
					ID:           "l3-1",
					Title:        "Early Atomic Models",
					Dependencies: []string{"l2-3"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "Dalton's Atomic Theory",
							Content: "In the early 1800s, John Dalton proposed that all matter was composed of tiny, indivisible particles called **atoms**. His theory was a cornerstone of modern chemistry.",
						},
						{
							Kind:    SlideText,
							Title:   "Thomson and Rutherford",
							Content: "J.J. Thomson discovered the **electron** and proposed the *plum pudding model*. Later, Ernest Rutherford's gold foil experiment showed the atom is mostly empty space with a tiny, dense, positively-charged **nucleus**.",
						},
						{
							Kind:    SlideImage,
							Title:   "Rutherford's Gold Foil Experiment",
							Content: "A minimalist diagram illustrating Rutherford's gold foil experiment. Show a source emitting alpha particles towards a very thin sheet of gold foil. Most particles should be shown passing straight through. A few should be slightly deflected, and one or two should be shown bouncing back at a large angle. Label the 'Alpha Particle Source', 'Gold Foil', and 'Deflected Particles'.",
						},
					},
				},
				{
					ID:           "l3-2",
					Title:        "The Modern Atom",
					Dependencies: []string{"l3-1"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "Protons, Neutrons, Electrons",
							Content: "The modern atom consists of three subatomic particles:\n- **Protons**: Positively charged, in the nucleus.\n- **Neutrons**: No charge, in the nucleus.\n- **Electrons**: Negatively charged, orbiting the nucleus in electron shells.",
						},
						{
							Kind:    SlideText,
							Title:   "Atomic Number & Mass Number",
							Content: "The **atomic number (Z)** is the number of protons and defines the element.\nThe **mass number (A)** is the sum of protons and neutrons in the nucleus.",
						},
					},
				},
				{
					ID:           "l3-3",
					Title:        "Isotopes",
					Dependencies: []string{"l3-2"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "What are Isotopes?",
							Content: "**Isotopes** are atoms of the same element that have the same number of protons but a *different* number of neutrons. This means they have different mass numbers.",
						},
						{
							Kind:    SlideText,
							Title:   "Example: Carbon",
							Content: "For example, Carbon-12 (`¹²C`) has 6 protons and 6 neutrons, while Carbon-14 (`¹⁴C`) has 6 protons and 8 neutrons. Both are still carbon, but `¹⁴C` is heavier and radioactive.",
						},
					},
				},
			},
		},
		{
			ID:    "unit4",
			Title: "Unit 4: The Periodic Table",
			Lessons: []Lesson{
				{
					ID:           "l4-1",
					Title:        "Organizing the Elements",
					Dependencies: []string{"l3-3"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "Mendeleev's Table",
							Content: "Dmitri Mendeleev arranged the elements by increasing **atomic mass** and noticed that properties repeated periodically. He left gaps for undiscovered elements, correctly predicting their properties.",
						},
						{
							Kind:    SlideText,
							Title:   "The Modern Table",
							Content: "The modern periodic table is arranged by increasing **atomic number** (number of protons). This resolved the issues in Mendeleev's table. The periodic law states that the properties of elements are periodic functions of their atomic numbers.",
						},
					},
				},
				{
					ID:           "l4-2",
					Title:        "Periodic Trends",
					Dependencies: []string{"l4-1"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "What are Trends?",
							Content: "Periodic trends are specific patterns in the properties of chemical elements that are revealed in the periodic table. Major trends include **atomic radius**, **ionization energy**, and **electronegativity**.",
						},
						{
							Kind:    SlideImage,
							Title:   "Diagram of Periodic Trends",
							Content: "A clean, minimalist diagram of the periodic table, showing only the outline. Use large, clear arrows to illustrate periodic trends. One arrow should point from top-right to bottom-left, labeled 'Atomic Radius Increases'. Another arrow should point from bottom-left to top-right, labeled 'Ionization Energy & Electronegativity Increase'. Use a simple, sans-serif font for labels.",
						},
					},
				},
			},
		},
		{
			ID:    "unit5",
			Title: "Unit 5: Chemical Bonding",
			Lessons: []Lesson{
				{
					ID:           "l5-1",
					Title:        "Ionic Bonding",
					Dependencies: []string{"l4-2"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "Transfer of Electrons",
							Content: "**Ionic bonding** typically occurs between a *metal* and a *nonmetal*. It involves the **transfer** of one or more electrons from the metal to the nonmetal, creating charged ions.",
						},
						{
							Kind:    SlideText,
							Title:   "Cations and Anions",
							Content: "The metal atom loses electrons to become a positively charged **cation**. The nonmetal atom gains electrons to become a negatively charged **anion**. The electrostatic attraction between these opposite charges forms the bond.",
						},
					},
				},
				{
					ID:           "l5-2",
					Title:        "Covalent Bonding",
					Dependencies: []string{"l5-1"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "Sharing Electrons",
							Content: "**Covalent bonding** occurs between *nonmetals*. It involves the **sharing** of valence electrons between atoms to achieve a stable electron configuration, typically a full octet.",
						},
						{
							Kind:    SlideImage,
							Title:   "Covalent Bond in Water",
							Content: "A simple, clear Lewis structure diagram for a water molecule (H2O). Show the letter 'O' for oxygen in the center. Show two 'H' letters for hydrogen, one on each side. Draw a single line connecting each H to the O, representing a shared pair of electrons. On the oxygen atom, draw two pairs of dots (four dots total) to represent its two lone pairs of electrons.",
						},
					},
				},
			},
		},
		{
			ID:    "unit6",
			Title: "Unit 6: Nomenclature & Reactions",
			Lessons: []Lesson{
				{
					ID:           "l6-1",
					Title:        "Naming Ionic Compounds",
					Dependencies: []string{"l5-2"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "Simple Rules",
							Content: "For binary ionic compounds, name the **cation** (metal) first, followed by the **anion** (nonmetal). The anion's ending is changed to *-ide*. For example, `NaCl` is Sodium Chloride.",
						},
						{
							Kind:    SlideText,
							Title:   "Transition Metals",
							Content: "If the cation is a transition metal that can form multiple charges (like iron), use a **Roman numeral** in parentheses to indicate the charge. For example, `FeCl2` is Iron (II) Chloride.",
						},
					},
				},
				{
					ID:           "l6-2",
					Title:        "Balancing Equations",
					Dependencies: []string{"l6-1"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "Law of Conservation of Mass",
							Content: "A chemical equation must be **balanced** to obey the Law of Conservation of Mass, which states that matter cannot be created or destroyed. This means you must have the same number of atoms of each element on both sides of the equation. We do this by adding **coefficients** in front of formulas.",
						},
						{
							Kind:  SlideInteractive,
							Title: "Balance the formation of water",
							Interactive: &InteractiveContent{
								Activity: "balance-equation",
								Equation: "H2 + O2 -> H2O",
								Balanced: []int{2, 1, 2},
							},
						},
						{
							Kind:  SlideInteractive,
							Title: "Balance the formation of ammonia",
							Interactive: &InteractiveContent{
								Activity: "balance-equation",
								Equation: "N2 + H2 -> NH3",
								Balanced: []int{1, 3, 2},
							},
						},
						{
							Kind:  SlideInteractive,
							Title: "Balance the combustion of methane",
							Interactive: &InteractiveContent{
								Activity: "balance-equation",
								Equation: "CH4 + O2 -> CO2 + H2O",
								Balanced: []int{1, 2, 1, 2},
							},
						},
					},
				},
			},
		},
	}
}

func anatomyUnits() []Unit {
	return []Unit{
		{
			ID:    "a-unit1",
			Title: "Unit 1: Introduction to A&P",
			Lessons: []Lesson{
				{
					ID:           "a-l1-1",
					Title:        "Intro to Anatomy",
					Dependencies: nil,
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "What is Anatomy?",
							Content: "Anatomy is the study of the structure of body parts and their relationships to one another.",
						},
					},
				},
				{
					ID:           "a-l1-2",
					Title:        "Anatomical Terminology",
					Dependencies: []string{"a-l1-1"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "The Language of Anatomy",
							Content: "We use specific directional and regional terms to describe body parts and positions. For example, *superior* means toward the head, and *inferior* means toward the feet.",
						},
					},
				},
				{
					ID:           "a-l1-3",
					Title:        "Homeostasis",
					Dependencies: []string{"a-l1-2"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "Maintaining Balance",
							Content: "Homeostasis is the body's ability to maintain a stable internal environment despite changing external conditions. It's a dynamic state of equilibrium.",
						},
					},
				},
			},
		},
		{
			ID:    "a-unit2",
			Title: "Unit 2: Chemical Level",
			Lessons: []Lesson{
				{
					ID:           "a-l2-1",
					Title:        "Basic Chemistry",
					Dependencies: []string{"a-l1-3"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "Atoms and Molecules",
							Content: "All matter, including our bodies, is made of atoms. Atoms bond together to form molecules.",
						},
					},
				},
				{
					ID:           "a-l2-2",
					Title:        "Important Biomolecules",
					Dependencies: []string{"a-l2-1"},
					Slides: []Slide{
						{
							Kind:    SlideText,
							Title:   "The Molecules of Life",
							Content: "The four major classes of biomolecules are carbohydrates, lipids, proteins, and nucleic acids. Each has a unique function in the body.",
						},
					},
				},
			},
		},
	}
}
