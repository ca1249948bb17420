package corpus

import "github.com/credlens/credlens/internal/model"

// seedRecords is the built-in corpus used when no corpus file is configured.
// Statements mirror well-documented fact-check outcomes so the pipeline is
// usable out of the box.
var seedRecords = []model.CorpusRecord{
	{
		ID:          "seed-001",
		Statement:   "5G mobile networks do not spread the coronavirus; viruses cannot travel on radio waves.",
		Verdict:     model.CorpusTrue,
		SourceName:  "World Health Organization",
		SourceURL:   "https://www.who.int/emergencies/diseases/novel-coronavirus-2019/advice-for-public/myth-busters",
		Category:    "health",
		Explanation: "COVID-19 spreads through respiratory droplets, and it spread in countries without 5G networks.",
	},
	{
		ID:          "seed-002",
		Statement:   "COVID-19 vaccines underwent rigorous clinical trials and are safe and effective.",
		Verdict:     model.CorpusTrue,
		SourceName:  "Centers for Disease Control and Prevention",
		SourceURL:   "https://www.cdc.gov/coronavirus/2019-ncov/vaccines/safety/safety-of-vaccines.html",
		Category:    "health",
		Explanation: "Safety monitoring across hundreds of millions of doses found serious adverse events to be rare.",
	},
	{
		ID:          "seed-003",
		Statement:   "The Earth is an oblate spheroid, not flat.",
		Verdict:     model.CorpusTrue,
		SourceName:  "NASA",
		SourceURL:   "https://www.nasa.gov/image-article/blue-marble-image-of-earth/",
		Category:    "science",
		Explanation: "Satellite imagery, circumnavigation, and gravity measurements all confirm the planet's shape.",
	},
	{
		ID:          "seed-004",
		Statement:   "Smoking tobacco causes lung cancer and cardiovascular disease.",
		Verdict:     model.CorpusTrue,
		SourceName:  "Centers for Disease Control and Prevention",
		SourceURL:   "https://www.cdc.gov/tobacco/basic_information/health_effects/index.htm",
		Category:    "health",
		Explanation: "Decades of epidemiological studies establish a causal link between smoking and cancer.",
	},
	{
		ID:          "seed-005",
		Statement:   "Global average surface temperature has risen by more than one degree Celsius since pre-industrial times.",
		Verdict:     model.CorpusTrue,
		SourceName:  "NOAA",
		SourceURL:   "https://www.noaa.gov/climate",
		Category:    "climate",
		Explanation: "Independent temperature records from NOAA, NASA, and the UK Met Office agree on the trend.",
	},
	{
		ID:          "seed-006",
		Statement:   "Drinking bleach or disinfectant cures COVID-19.",
		Verdict:     model.CorpusFalse,
		SourceName:  "World Health Organization",
		SourceURL:   "https://www.who.int/emergencies/diseases/novel-coronavirus-2019/advice-for-public/myth-busters",
		Category:    "health",
		Explanation: "Ingesting disinfectant is dangerous and has no effect on viruses already in the body.",
	},
	{
		ID:          "seed-007",
		Statement:   "Vaccines cause autism.",
		Verdict:     model.CorpusFalse,
		SourceName:  "Centers for Disease Control and Prevention",
		SourceURL:   "https://www.cdc.gov/vaccinesafety/concerns/autism.html",
		Category:    "health",
		Explanation: "The originating study was retracted for fraud; large cohort studies show no association.",
	},
	{
		ID:          "seed-008",
		Statement:   "The Great Wall of China is visible from the Moon with the naked eye.",
		Verdict:     model.CorpusFalse,
		SourceName:  "NASA",
		SourceURL:   "https://www.nasa.gov/vision/space/workinginspace/great_wall.html",
		Category:    "science",
		Explanation: "Astronauts report the wall is not visible even from low Earth orbit without aid.",
	},
	{
		ID:          "seed-009",
		Statement:   "Humans use only ten percent of their brains.",
		Verdict:     model.CorpusFalse,
		SourceName:  "Scientific American",
		SourceURL:   "https://www.scientificamerican.com/article/do-people-only-use-10-percent-of-their-brains/",
		Category:    "science",
		Explanation: "Brain imaging shows activity across virtually all regions, even during sleep.",
	},
	{
		ID:          "seed-010",
		Statement:   "Genetically modified foods currently on the market are safe to eat.",
		Verdict:     model.CorpusTrue,
		SourceName:  "World Health Organization",
		SourceURL:   "https://www.who.int/news-room/questions-and-answers/item/food-genetically-modified",
		Category:    "health",
		Explanation: "GM foods on the international market have passed safety assessments.",
	},
	{
		ID:          "seed-011",
		Statement:   "Moderate coffee consumption is linked to both health benefits and risks depending on the population studied.",
		Verdict:     model.CorpusMixed,
		SourceName:  "NIH",
		SourceURL:   "https://www.nih.gov/news-events/nih-research-matters/coffee-health",
		Category:    "health",
		Explanation: "Evidence on coffee and health outcomes is heterogeneous across populations and doses.",
	},
	{
		ID:          "seed-012",
		Statement:   "Eating late at night inherently causes more weight gain than eating the same calories earlier.",
		Verdict:     model.CorpusMixed,
		SourceName:  "NIH",
		SourceURL:   "https://www.nih.gov/news-events",
		Category:    "health",
		Explanation: "Studies disagree; total intake and circadian effects interact in ways not fully settled.",
	},
}
