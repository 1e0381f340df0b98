package catalog

import "readings-index/pkg/domain"

// readings mirrors the course schedule. Order is the order of indexing.
var readings = []domain.ReadingEntry{
	{ID: "w01_parmenides", Week: 1, Title: `Parmenides, "On Nature"`, File: "Week 1_Parmenides/Week 1_Parmenides.pdf"},
	{ID: "w01_kingsley", Week: 1, Title: "Kingsley, In the Dark Places of Wisdom", File: "Week 1_Parmenides/Week 1_Kingsley.pdf"},
	{ID: "w02_meta", Week: 2, Title: "Aristotle, Metaphysics Book Θ", File: "Week 2_Aristotle/Week 2_Aristotle.pdf"},
	{ID: "w02_di", Week: 2, Title: "Aristotle, De Interpretatione ch. 9", File: "Week 2_Aristotle/Week 2_Conway.pdf"},
	{ID: "w02_witt", Week: 2, Title: `Witt, "The Priority of Actuality in Aristotle"`, File: "Week 2_Aristotle/Week 2_Witt.pdf"},
	{ID: "w03_avicenna", Week: 3, Title: "Avicenna, The Metaphysics of The Healing", File: "Week 3_Avicenna/Week 3_Avicenna.pdf"},
	{ID: "w03_adamson", Week: 3, Title: `Adamson, "From the Necessary Existent to God"`, File: "Week 3_Avicenna/Week 3_Adamson.pdf"},
	{ID: "w04_nagarjuna", Week: 4, Title: "Nāgārjuna, Mūlamadhyamakakārikā", File: "Week 4_Nagarjuna/Week 4_Nagarjuna.pdf"},
	{ID: "w04_garfield", Week: 4, Title: `Garfield, "Dependent Arising and the Emptiness of Emptiness"`, File: "Week 4_Nagarjuna/Week 4_Garfield (Essay).pdf"},
	{ID: "w04_commentary", Week: 4, Title: "Garfield, Commentary", File: "Week 4_Nagarjuna/Week 4_Garfield (Commentary).pdf"},
	{ID: "w05_monad", Week: 5, Title: "Leibniz, Monadology", File: "Week 5_Leibniz and Du Châtelet/Leibniz_Monadology.pdf"},
	{ID: "w05_duchat", Week: 5, Title: "Du Châtelet, Institutions de physique", File: "Week 5_Leibniz and Du Châtelet/Week 5_Du Chatelet.pdf"},
	{ID: "w05_orig", Week: 5, Title: `Leibniz, "On the Ultimate Origination of Things"`, File: "Week 5_Leibniz and Du Châtelet/Week 5_Leibniz (Origination).pdf"},
	{ID: "w06_kant", Week: 6, Title: `Kant, Critique of Pure Reason: "Postulates of Empirical Thought"`, File: "Week 6_Kant and Leech/Week 6_Kant.pdf"},
	{ID: "w06_leech", Week: 6, Title: `Leech, "The Function of Modal Judgment and the Kantian Gap"`, File: "Week 6_Kant and Leech/Week 6_Leech.pdf"},
	{ID: "w07_arabi", Week: 7, Title: "Ibn ʿArabī, Fuṣūṣ al-Ḥikam", File: "Week 7_al-Adawiyya and Ibn Arabi/Week 7_Arabi.pdf"},
	{ID: "w08_husserl", Week: 8, Title: `Husserl, "The Origin of Geometry"`, File: "Week 8_Husserl and Derrida/Week 8_Husserl and Derrida.pdf"},
	{ID: "w09_heid", Week: 9, Title: "Heidegger, Being and Time Division II ch. 1", File: "Week 9_Heidegger and Arendt/Week 9_Heidegger.pdf"},
	{ID: "w09_arendt", Week: 9, Title: "Arendt, The Human Condition ch. 5", File: "Week 9_Heidegger and Arendt/Week 9_Arendt.pdf"},
	{ID: "w10_peirce", Week: 10, Title: `Peirce, "A Guess at the Riddle"`, File: "Week 10_Peirce/Week 10_Peirce.pdf"},
	{ID: "w10_continuity", Week: 10, Title: `"The Continuity of Life: On Peirce's Objective Idealism"`, File: "Week 10_Peirce/Week 10_Ibri (On Peirce's Objective Idealism).pdf"},
	{ID: "w11_nishida", Week: 11, Title: "Nishida Kitarō, An Inquiry into the Good", File: "Week 11_Nishida and Lalla/Week 11_Nishida.pdf"},
	{ID: "w11_lalla", Week: 11, Title: "Lalla, Naked Song", File: "Week 11_Nishida and Lalla/Week 11_Lalla.pdf"},
	{ID: "w12_white", Week: 12, Title: "Whitehead, Science and the Modern World ch. 11", File: "Week 12_Whitehead/Week 12_Whitehead.pdf"},
	{ID: "w12_stengers", Week: 12, Title: "Stengers, Thinking with Whitehead", File: "Week 12_Whitehead/Week 12_Stengers (Thinking With Whitehead).pdf"},
	// The week 13 directory name really does end in a space.
	{ID: "w13_thompson", Week: 13, Title: "Thompson, Waking, Dreaming, Being ch. 1", File: "Week 13_Thompson, Weil, Varela /Week 13_Thompson.pdf"},
	{ID: "w13_weil", Week: 13, Title: `Weil, "Reflections on the Right Use of School Studies"`, File: "Week 13_Thompson, Weil, Varela /Week 13_Weil.pdf"},
	{ID: "w13_varela", Week: 13, Title: `Varela, "Neurophenomenology"`, File: "Week 13_Thompson, Weil, Varela /Week 13_Varela.pdf"},
	{ID: "w14_plotinus", Week: 14, Title: "Plotinus, Enneads V.1", File: "Week 14_Plotinus, Conway/Week 14_Plotinus.pdf"},
	{ID: "w14_conway", Week: 14, Title: "Conway, Principles of the Most Ancient and Modern Philosophy", File: "Week 14_Plotinus, Conway/Week 14_Conway.pdf"},
	{ID: "w15_marcus", Week: 15, Title: `Barcan Marcus, "Modalities and Intensional Languages"`, File: "Week 15_Hamkins, Barcon Marcus/Week 15_Marcus.pdf"},
	{ID: "w15_hamkins", Week: 15, Title: `Hamkins, "The Set-Theoretic Multiverse"`, File: "Week 15_Hamkins, Barcon Marcus/Week 15_Hamkins (multiverse).pdf"},
	{ID: "w15_linnebo", Week: 15, Title: `Hamkins & Linnebo, "The Modal Logic of Set-Theoretic Potentialism"`, File: "Week 15_Hamkins, Barcon Marcus/Week 15_Hamkins and Linnebo.pdf"},
	{ID: "w16_metal", Week: 16, Title: `Koch, Silvestro & Foster, "The Evolutionary Dynamics of Cultural Change"`, File: "Week 16_Foster/Week 16_Foster and Koch.pdf"},
	{ID: "w16_borges", Week: 16, Title: `Borges, "The Garden of Forking Paths"`, File: "Week 16_Foster/Week 16_Borges.pdf"},
}

// Readings returns the built-in catalog in schedule order.
// The returned slice is a copy; callers may modify it freely.
func Readings() []domain.ReadingEntry {
	out := make([]domain.ReadingEntry, len(readings))
	copy(out, readings)
	return out
}

// DuplicateIDs returns every id that appears more than once, in order of
// first repetition.
func DuplicateIDs(entries []domain.ReadingEntry) []string {
	seen := make(map[string]int, len(entries))
	var dups []string
	for _, e := range entries {
		seen[e.ID]++
		if seen[e.ID] == 2 {
			dups = append(dups, e.ID)
		}
	}
	return dups
}
