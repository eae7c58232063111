package service

// satelliteSeed is the fixed catalog inserted when the satellite table
// is empty. Altitudes are km, resolutions are m/pixel.
var satelliteSeed = []struct {
	name        string
	designation string
	altitudeKm  float64
	resolutionM float64
}{
	{"AstroVision-1", "AV-001", 550.0, 0.5},
	{"SkyWatch-2", "SW-002", 620.0, 0.4},
	{"OrbitEye-3", "OE-003", 680.0, 0.3},
	{"SpaceScan-4", "SS-004", 590.0, 0.45},
	{"StarMapper-5", "SM-005", 700.0, 0.35},
	{"CosmicLens-6", "CL-006", 640.0, 0.38},
	{"NebulaSight-7", "NS-007", 710.0, 0.32},
	{"GalaxyTrack-8", "GT-008", 600.0, 0.42},
	{"PlanetScope-9", "PS-009", 580.0, 0.48},
	{"DeepSpace-10", "DS-010", 750.0, 0.28},
	{"CelestialEye-11", "CE-011", 630.0, 0.39},
	{"StarSeeker-12", "SS-012", 670.0, 0.36},
	{"AstroGuard-13", "AG-013", 610.0, 0.41},
	{"CosmicWatch-14", "CW-014", 690.0, 0.34},
	{"OrbitTracer-15", "OT-015", 650.0, 0.37},
	{"SkyScanner-16", "SS-016", 720.0, 0.31},
	{"SpaceVision-17", "SV-017", 570.0, 0.46},
	{"AstroProbe-18", "AP-018", 730.0, 0.30},
	{"StarGazer-19", "SG-019", 660.0, 0.33},
	{"NebulaWatch-20", "NW-020", 595.0, 0.44},
	{"GalaxyEye-21", "GE-021", 740.0, 0.29},
	{"PlanetWatch-22", "PW-022", 615.0, 0.40},
	{"CosmicScan-23", "CS-023", 705.0, 0.33},
	{"OrbitVision-24", "OV-024", 625.0, 0.39},
	{"SkyTracker-25", "ST-025", 695.0, 0.34},
	{"SpaceLens-26", "SL-026", 585.0, 0.47},
	{"AstroSight-27", "AS-027", 715.0, 0.31},
	{"StarWatch-28", "SW-028", 635.0, 0.38},
	{"NebulaScope-29", "NS-029", 675.0, 0.36},
	{"GalaxyScope-30", "GS-030", 605.0, 0.43},
	{"CelestialScan-31", "CS-031", 725.0, 0.30},
	{"DeepWatch-32", "DW-032", 645.0, 0.37},
}
