package content

// TextPools holds the static educational paragraphs, keyed by main
// topic then strategy. The pools are read-only reference data: they are
// built once and injected into the assembler, never mutated.
type TextPools map[string]map[Strategy][]string

// GenericPool holds templated fallback paragraphs for topics without a
// dedicated pool. The "{label}" and "{slug}" placeholders are
// substituted with the topic's display label and slug at draw time.
type GenericPool map[Strategy][]string

// DefaultTextPools returns the built-in paragraph pools for the six
// seeded main topics.
func DefaultTextPools() TextPools {
	return TextPools{
		"black-holes": {
			StrategyDeeper: {
				"Black holes form when massive stars collapse at the end of their lifecycle. The core implodes under its own gravity, creating a region so dense that not even light can escape.",
				"At the center of a black hole lies the singularity, a point of theoretically infinite density where the known laws of physics break down completely.",
				"Hawking radiation, proposed by Stephen Hawking in 1974, suggests that black holes slowly evaporate by emitting thermal radiation due to quantum effects near the event horizon.",
				"The event horizon is not a physical barrier but a mathematical boundary. Once crossed, the escape velocity exceeds the speed of light, making return impossible.",
			},
			StrategyBranch: {
				"Neutron stars are the ultra-dense remnants of supernova explosions. A teaspoon of neutron star material would weigh about a billion tons on Earth.",
				"Gravitational waves, first detected by LIGO in 2015, are ripples in spacetime produced when massive objects like black holes merge.",
				"Einstein's general relativity describes gravity not as a force, but as the curvature of spacetime caused by mass and energy.",
			},
			StrategyPivot: {
				"While black holes operate at the largest scales, quantum mechanics governs the smallest. The quest to unify these two frameworks is one of physics' greatest challenges.",
				"Just as black holes represent extreme physics, CRISPR represents extreme biology: the ability to edit the fundamental code of life with unprecedented precision.",
			},
		},
		"quantum-mechanics": {
			StrategyDeeper: {
				"Wave-particle duality is one of quantum mechanics' most counterintuitive concepts. Photons and electrons exhibit both wave-like interference and particle-like detection.",
				"Quantum entanglement connects particles across any distance instantaneously. Measuring one particle instantly determines the state of its entangled partner.",
				"Heisenberg's uncertainty principle states that the more precisely you know a particle's position, the less precisely you can know its momentum, and vice versa.",
				"Quantum tunneling allows particles to pass through energy barriers they classically shouldn't be able to surmount, enabling processes like nuclear fusion in stars.",
			},
			StrategyBranch: {
				"Quantum computers harness superposition and entanglement to solve certain problems exponentially faster than classical computers.",
				"The Standard Model of particle physics categorizes all known fundamental particles and describes three of the four fundamental forces of nature.",
			},
			StrategyPivot: {
				"From the quantum world to the cosmic: dark matter makes up about 27% of the universe, yet we can't see or directly detect it.",
				"Neural networks, inspired by biological brains, learn patterns from data, a computational approach that mirrors quantum systems' statistical nature.",
			},
		},
		"crispr-gene-editing": {
			StrategyDeeper: {
				"CRISPR-Cas9 works like molecular scissors. The guide RNA directs the Cas9 protein to a specific DNA sequence, where it makes a precise cut.",
				"Off-target effects remain one of CRISPR's biggest challenges. The system can sometimes cut at unintended genomic locations with similar sequences.",
				"Prime editing, developed in 2019, is a more precise version that can directly write new genetic information into DNA without making double-strand breaks.",
				"Gene drives using CRISPR could spread modified genes through wild populations, potentially eliminating disease-carrying mosquitoes.",
			},
			StrategyBranch: {
				"Synthetic biology goes beyond editing genes: it designs entirely new biological systems and organisms from scratch.",
				"Epigenetics shows that gene expression can be heritably changed without altering the DNA sequence itself, challenging our understanding of inheritance.",
			},
			StrategyPivot: {
				"While CRISPR edits the code of life, neural networks learn to read and interpret it, with AI models now predicting protein structures from genetic sequences.",
			},
		},
		"dark-matter": {
			StrategyDeeper: {
				"WIMPs (Weakly Interacting Massive Particles) are the leading dark matter candidates. Despite decades of searching, none have been directly detected.",
				"Galaxy rotation curves provided the first strong evidence for dark matter. Stars at the edges of galaxies orbit faster than visible matter alone can explain.",
				"The Bullet Cluster, a collision of two galaxy clusters, provided direct observational evidence that dark matter exists separately from normal matter.",
				"Axions are hypothetical ultralight particles that could account for dark matter. Several experiments worldwide are searching for them.",
			},
			StrategyBranch: {
				"The Cosmic Microwave Background is the afterglow of the Big Bang, carrying a precise map of the universe when it was only 380,000 years old.",
				"The Hubble Tension refers to the discrepancy between different measurements of the universe's expansion rate, potentially pointing to new physics.",
			},
			StrategyPivot: {
				"From the unseen universe to the unseen genome: like dark matter, much of our DNA was once considered 'junk' until its regulatory roles were discovered.",
			},
		},
		"climate-science": {
			StrategyDeeper: {
				"The greenhouse effect is essential for life. Without it, Earth's average temperature would be about -18°C. Human activities have intensified this natural process.",
				"Ice cores from Antarctica contain air bubbles that record atmospheric conditions going back 800,000 years, showing a clear correlation between CO2 and temperature.",
				"Climate models divide Earth's atmosphere into grid cells and simulate physical processes. Modern models can reproduce historical climate changes with remarkable accuracy.",
				"Thermohaline circulation, the global ocean conveyor belt, distributes heat around the planet. Its potential disruption is one of climate change's most concerning tipping points.",
			},
			StrategyBranch: {
				"Ocean acidification, sometimes called 'the other CO2 problem', threatens marine ecosystems as absorbed carbon dioxide lowers seawater pH.",
				"Geoengineering proposals range from injecting aerosols into the stratosphere to reflect sunlight, to capturing carbon dioxide directly from the air.",
			},
			StrategyPivot: {
				"Climate models and neural networks share surprising similarities: both use complex mathematical systems to find patterns in massive datasets.",
			},
		},
		"neural-networks": {
			StrategyDeeper: {
				"Backpropagation is the algorithm that makes deep learning possible. It efficiently computes how much each connection contributes to the network's errors.",
				"Transformers revolutionized AI by introducing the attention mechanism, allowing models to weigh the importance of different parts of the input simultaneously.",
				"The attention mechanism lets a model focus on relevant parts of an input sequence. In language, this means understanding that 'it' in a sentence refers to a specific noun.",
				"Gradient descent optimizes neural networks by iteratively adjusting weights in the direction that most reduces the error, like a ball rolling downhill.",
			},
			StrategyBranch: {
				"Reinforcement learning trains agents through trial and error, using rewards and penalties. It's behind game-playing AIs and robotic control systems.",
				"Generative AI creates new content by learning statistical patterns from massive training datasets: text, images, music, code.",
			},
			StrategyPivot: {
				"Both neural networks and quantum computers process information in fundamentally non-classical ways, leading researchers to explore quantum machine learning.",
			},
		},
	}
}

// DefaultGenericPool returns the templated fallback pool used for
// unknown topics.
func DefaultGenericPool() GenericPool {
	return GenericPool{
		StrategyDeeper: {
			"{label} is a fascinating field that continues to evolve. Researchers are uncovering new insights that challenge our previous understanding.",
			"The deeper you look into {label}, the more complexity emerges. What seems simple on the surface reveals layers of interconnected phenomena.",
			"Recent advances in {label} have opened new avenues for research and practical applications that were previously considered impossible.",
		},
		StrategyBranch: {
			"{label} connects to many neighboring fields. These interdisciplinary connections often lead to the most surprising discoveries.",
			"Related fields offer fresh perspectives on {label}, revealing unexpected parallels and shared underlying principles.",
		},
		StrategyPivot: {
			"Stepping back from {label}, entirely different scientific domains offer striking analogies and cross-pollination of ideas.",
			"Science's greatest breakthroughs often come from connecting seemingly unrelated fields. Moving from {label} to a new domain can spark unexpected insights.",
		},
	}
}
