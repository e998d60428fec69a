package advisor

// Track names. These are a fixed enumeration, not free text.
const (
	TrackGeneral       = "General"
	TrackDataScience   = "Data Science"
	TrackCybersecurity = "Cybersecurity"
)

// RemedialCodes are no-credit placeholder prerequisites assumed
// satisfied by default. They must never surface as a blocking missing
// prerequisite in any report.
var RemedialCodes = NewCodeSet("ARB0099", "ENGL0098", "ENGL0099", "MATH0099")

// CapstoneCodes are the senior-project courses gated behind the senior
// hours threshold.
var CapstoneCodes = NewCodeSet("CS391", "CS491", "CS492")

// priorityPrefixes are the departments whose courses are level-ranked
// ahead of service courses when scheduling.
var priorityPrefixes = []string{"CS", "CE", "MATH", "EE", "IE"}

// DefaultTrackAttributes returns the compiled-in track configuration,
// used when the track_requirements table has not been seeded.
func DefaultTrackAttributes() *TrackAttributes {
	return &TrackAttributes{
		CommonCompulsory: NewCodeSet(
			"CS201", "CE201", "CS222", "CS223", "CS263", "CS264", "CS323",
			"CS342", "CE352", "CS355", "CS356", "CE357", "CE3570", "CS416",
			"CS451", "MATH101", "MATH102", "CS116", "CS1160", "CS117",
			"CS1170", "CE212", "CE2120", "EE317", "IE0121", "CS391",
			"CS491", "CS492", "ARB100", "ENGL1001", "ENGL1002", "MILS100",
			"NE101",
		),
		Tracks: map[string]TrackRequirements{
			TrackGeneral: {
				Compulsory: NewCodeSet("CS330", "CS332", "CS419", "CS477"),
				Electives: NewCodeSet(
					"CS333", "CS357", "CS358", "CS359", "CS364", "CS365",
					"CS371", "CS430", "CS432", "CS439", "CS450", "CS457",
					"CS458", "CS460", "CS462", "CS481", "CS482", "CS484",
					"CS489", "CS4512", "CS4811", "CS4831", "CS4832", "CS4833",
				),
			},
			TrackDataScience: {
				Compulsory: NewCodeSet("CS330", "CE377", "CS460", "EE570"),
				Electives: NewCodeSet(
					"CS358", "CS359", "CS364", "CS371", "CS432", "CS450",
					"CS456", "CS457", "CS462", "CS484", "CS4512", "CS4811",
					"CS4813", "CS4831", "CS4832", "CS4833",
				),
			},
			TrackCybersecurity: {
				Compulsory: NewCodeSet("CE354", "CS470", "CS4713", "CS4714"),
				Electives: NewCodeSet(
					"CS354", "CS357", "CS359", "CS370", "CS372", "CS373",
					"CS374", "CS458", "CS4511", "CS4711", "CS4712", "CS4715",
					"CS4812", "CS4831", "CS4832", "CS4833",
				),
			},
		},
	}
}

// GermanCourseCodes are language courses offered without a catalog row
// in some terms; the snapshot loader synthesizes placeholder entries so
// plans and hour counts stay correct.
var GermanCourseCodes = []string{"GERL101", "GERL102", "GERL201", "GERL202", "GERL301", "GERL302"}
