package topicgraph

import (
	"sciscroll/domain/content"
)

// Seed data for the topic graph: six main science topics, each with
// strategy-keyed subtopic lists. Deeper subtopics stay inside the
// topic, branch subtopics cross to adjacent fields, pivot subtopics
// jump to unrelated main topics.

func defaultSubtopics() map[string]map[content.Strategy][]string {
	return map[string]map[content.Strategy][]string{
		"black-holes": {
			content.StrategyDeeper: {"event-horizon", "singularity", "hawking-radiation", "spaghettification"},
			content.StrategyBranch: {"neutron-stars", "gravitational-waves", "general-relativity"},
			content.StrategyPivot:  {"quantum-mechanics", "crispr-gene-editing"},
		},
		"quantum-mechanics": {
			content.StrategyDeeper: {"wave-particle-duality", "quantum-entanglement", "uncertainty-principle", "quantum-tunneling"},
			content.StrategyBranch: {"quantum-computing", "standard-model"},
			content.StrategyPivot:  {"dark-matter", "neural-networks"},
		},
		"crispr-gene-editing": {
			content.StrategyDeeper: {"cas9-mechanism", "off-target-effects", "prime-editing", "gene-drives"},
			content.StrategyBranch: {"synthetic-biology", "epigenetics"},
			content.StrategyPivot:  {"neural-networks", "climate-science"},
		},
		"dark-matter": {
			content.StrategyDeeper: {"wimps", "galaxy-rotation-curves", "bullet-cluster", "axions"},
			content.StrategyBranch: {"cosmic-microwave-background", "hubble-tension"},
			content.StrategyPivot:  {"crispr-gene-editing", "neural-networks"},
		},
		"climate-science": {
			content.StrategyDeeper: {"greenhouse-effect", "ice-cores", "climate-models", "thermohaline-circulation"},
			content.StrategyBranch: {"ocean-acidification", "geoengineering"},
			content.StrategyPivot:  {"neural-networks", "dark-matter"},
		},
		"neural-networks": {
			content.StrategyDeeper: {"backpropagation", "transformers", "attention-mechanism", "gradient-descent"},
			content.StrategyBranch: {"reinforcement-learning", "generative-ai"},
			content.StrategyPivot:  {"quantum-mechanics", "black-holes"},
		},
	}
}

func defaultNodes() map[string]Node {
	nodes := []Node{
		// Main topics
		{ID: "black-holes", Label: "Black Holes", Description: "Regions of spacetime where gravity is so strong that nothing, not even light, can escape."},
		{ID: "quantum-mechanics", Label: "Quantum Mechanics", Description: "The physics of matter and energy at the smallest scales, where probability replaces certainty."},
		{ID: "crispr-gene-editing", Label: "CRISPR Gene Editing", Description: "A molecular toolkit for making precise, targeted changes to DNA."},
		{ID: "dark-matter", Label: "Dark Matter", Description: "The invisible mass that shapes galaxies but has never been directly detected."},
		{ID: "climate-science", Label: "Climate Science", Description: "The study of Earth's climate system and how human activity is changing it."},
		{ID: "neural-networks", Label: "Neural Networks", Description: "Computing systems inspired by biological brains that learn patterns from data."},

		// Black holes
		{ID: "event-horizon", Label: "Event Horizon", Description: "The boundary around a black hole beyond which escape is impossible."},
		{ID: "singularity", Label: "Singularity", Description: "The point of theoretically infinite density at a black hole's center."},
		{ID: "hawking-radiation", Label: "Hawking Radiation", Description: "Thermal radiation through which black holes slowly evaporate."},
		{ID: "spaghettification", Label: "Spaghettification", Description: "The extreme tidal stretching of objects falling into a black hole."},
		{ID: "neutron-stars", Label: "Neutron Stars", Description: "Ultra-dense stellar remnants left behind by supernova explosions."},
		{ID: "gravitational-waves", Label: "Gravitational Waves", Description: "Ripples in spacetime produced by accelerating massive objects."},
		{ID: "general-relativity", Label: "General Relativity", Description: "Einstein's theory describing gravity as the curvature of spacetime."},

		// Quantum mechanics
		{ID: "wave-particle-duality", Label: "Wave-Particle Duality", Description: "The dual wave-like and particle-like behavior of quantum objects."},
		{ID: "quantum-entanglement", Label: "Quantum Entanglement", Description: "Correlations between particles that persist across any distance."},
		{ID: "uncertainty-principle", Label: "Uncertainty Principle", Description: "The fundamental limit on knowing position and momentum simultaneously."},
		{ID: "quantum-tunneling", Label: "Quantum Tunneling", Description: "Particles crossing energy barriers they classically could not surmount."},
		{ID: "quantum-computing", Label: "Quantum Computing", Description: "Computation that exploits superposition and entanglement."},
		{ID: "standard-model", Label: "Standard Model", Description: "The catalog of known fundamental particles and three of the four forces."},

		// CRISPR
		{ID: "cas9-mechanism", Label: "Cas9 Mechanism", Description: "How the guide RNA steers the Cas9 protein to cut a specific DNA sequence."},
		{ID: "off-target-effects", Label: "Off-Target Effects", Description: "Unintended cuts at genomic locations with similar sequences."},
		{ID: "prime-editing", Label: "Prime Editing", Description: "A precise editing technique that writes new genetic information without double-strand breaks."},
		{ID: "gene-drives", Label: "Gene Drives", Description: "CRISPR constructs that spread modified genes through wild populations."},
		{ID: "synthetic-biology", Label: "Synthetic Biology", Description: "Designing new biological systems and organisms from scratch."},
		{ID: "epigenetics", Label: "Epigenetics", Description: "Heritable changes in gene expression without changes to the DNA sequence."},

		// Dark matter
		{ID: "wimps", Label: "WIMPs", Description: "Weakly Interacting Massive Particles, the leading dark matter candidates."},
		{ID: "galaxy-rotation-curves", Label: "Galaxy Rotation Curves", Description: "The stellar orbit measurements that first revealed dark matter."},
		{ID: "bullet-cluster", Label: "Bullet Cluster", Description: "A galaxy cluster collision giving direct evidence for dark matter."},
		{ID: "axions", Label: "Axions", Description: "Hypothetical ultralight particles that could account for dark matter."},
		{ID: "cosmic-microwave-background", Label: "Cosmic Microwave Background", Description: "The afterglow of the Big Bang, a map of the infant universe."},
		{ID: "hubble-tension", Label: "Hubble Tension", Description: "The discrepancy between measurements of the universe's expansion rate."},

		// Climate science
		{ID: "greenhouse-effect", Label: "Greenhouse Effect", Description: "The atmospheric trapping of heat that keeps Earth habitable."},
		{ID: "ice-cores", Label: "Ice Cores", Description: "Drilled climate archives recording 800,000 years of atmospheric history."},
		{ID: "climate-models", Label: "Climate Models", Description: "Grid-based simulations of Earth's physical climate processes."},
		{ID: "thermohaline-circulation", Label: "Thermohaline Circulation", Description: "The global ocean conveyor belt that redistributes heat."},
		{ID: "ocean-acidification", Label: "Ocean Acidification", Description: "Falling seawater pH as the ocean absorbs carbon dioxide."},
		{ID: "geoengineering", Label: "Geoengineering", Description: "Deliberate large-scale interventions in Earth's climate system."},

		// Neural networks
		{ID: "backpropagation", Label: "Backpropagation", Description: "The error-attribution algorithm that makes deep learning trainable."},
		{ID: "transformers", Label: "Transformers", Description: "The attention-based architecture behind modern language models."},
		{ID: "attention-mechanism", Label: "Attention Mechanism", Description: "Letting models weigh the relevance of different parts of their input."},
		{ID: "gradient-descent", Label: "Gradient Descent", Description: "Iterative weight adjustment in the direction that most reduces error."},
		{ID: "reinforcement-learning", Label: "Reinforcement Learning", Description: "Training agents through rewards and penalties by trial and error."},
		{ID: "generative-ai", Label: "Generative AI", Description: "Models that create new text, images, music, and code from learned patterns."},
	}

	byID := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}
	return byID
}
