package nasa

// BrowsePage type is a single response of the NeoWs browse endpoint.
type BrowsePage struct {
	Links            Links             `json:"links"`
	Page             PageInfo          `json:"page"`
	NearEarthObjects []NearEarthObject `json:"near_earth_objects"`
}

// Links type holds pagination links of a page.
type Links struct {
	Next     string `json:"next"`
	Previous string `json:"previous"`
	Self     string `json:"self"`
}

// PageInfo type describes position of a page in the whole result set.
type PageInfo struct {
	Size          int `json:"size"`
	TotalElements int `json:"total_elements"`
	TotalPages    int `json:"total_pages"`
	Number        int `json:"number"`
}

// NearEarthObject type describes an asteroid as returned by NeoWs.
type NearEarthObject struct {
	ID                             string                   `json:"id"`
	NeoReferenceID                 string                   `json:"neo_reference_id"`
	Name                           string                   `json:"name"`
	NameLimited                    string                   `json:"name_limited"`
	Designation                    string                   `json:"designation"`
	NASAJPLURL                     string                   `json:"nasa_jpl_url"`
	AbsoluteMagnitudeH             *float64                 `json:"absolute_magnitude_h"`
	EstimatedDiameter              map[string]DiameterRange `json:"estimated_diameter"`
	IsPotentiallyHazardousAsteroid bool                     `json:"is_potentially_hazardous_asteroid"`
	CloseApproachData              []CloseApproach          `json:"close_approach_data"`
	OrbitalData                    *OrbitalData             `json:"orbital_data"`
	IsSentryObject                 bool                     `json:"is_sentry_object"`
}

// DiameterRange type is estimated diameter bounds in a single unit.
type DiameterRange struct {
	Min float64 `json:"estimated_diameter_min"`
	Max float64 `json:"estimated_diameter_max"`
}

// CloseApproach type describes one approach of an object to a body.
// Numeric values are transferred as strings by the API.
type CloseApproach struct {
	CloseApproachDate      string       `json:"close_approach_date"`
	EpochDateCloseApproach int64        `json:"epoch_date_close_approach"`
	RelativeVelocity       Velocity     `json:"relative_velocity"`
	MissDistance           MissDistance `json:"miss_distance"`
	OrbitingBody           string       `json:"orbiting_body"`
}

type Velocity struct {
	KilometersPerSecond string `json:"kilometers_per_second"`
	KilometersPerHour   string `json:"kilometers_per_hour"`
	MilesPerHour        string `json:"miles_per_hour"`
}

type MissDistance struct {
	Astronomical string `json:"astronomical"`
	Lunar        string `json:"lunar"`
	Kilometers   string `json:"kilometers"`
	Miles        string `json:"miles"`
}

// OrbitalData type holds the subset of orbit description that is exported.
type OrbitalData struct {
	OrbitID              string     `json:"orbit_id"`
	FirstObservationDate string     `json:"first_observation_date"`
	LastObservationDate  string     `json:"last_observation_date"`
	OrbitClass           OrbitClass `json:"orbit_class"`
}

type OrbitClass struct {
	OrbitClassType        string `json:"orbit_class_type"`
	OrbitClassDescription string `json:"orbit_class_description"`
}
