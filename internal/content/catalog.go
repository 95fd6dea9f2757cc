// Package content serves the health information pages: a curated condition
// catalog held in-process and articles fetched from the public content
// service.
package content

import (
	"strconv"

	"github.com/carelink/portal-gateway/internal/domain"
)

// The condition library is curated editorial data, not backend state. It ships
// with the binary so the pages work even when the content service is down.
var topics = []domain.HealthTopic{
	{ID: 1, Name: "diabetes", Title: "Diabetes Mellitus", Summary: "A chronic condition affecting how your body processes blood sugar (glucose), leading to elevated blood sugar levels.", Category: "Endocrinology", Prevalence: "463 million adults worldwide"},
	{ID: 2, Name: "hypertension", Title: "Hypertension (High Blood Pressure)", Summary: "A common condition where the long-term force of blood against artery walls is high enough to cause health problems.", Category: "Cardiology", Prevalence: "1.28 billion adults worldwide"},
	{ID: 3, Name: "dengue", Title: "Dengue Fever", Summary: "A mosquito-borne viral infection causing flu-like illness and potentially developing into severe dengue.", Category: "Infectious Disease", Prevalence: "390 million infections annually"},
	{ID: 4, Name: "covid-19", Title: "COVID-19", Summary: "A contagious disease caused by the SARS-CoV-2 virus, affecting the respiratory system and other organs.", Category: "Infectious Disease", Prevalence: "Global pandemic since 2020"},
	{ID: 5, Name: "obesity", Title: "Obesity", Summary: "A complex disease involving excessive body fat that increases the risk of other health problems.", Category: "Metabolic Health", Prevalence: "650 million adults worldwide"},
	{ID: 6, Name: "asthma", Title: "Asthma", Summary: "A chronic respiratory condition causing inflammation and narrowing of airways, leading to breathing difficulties.", Category: "Pulmonology", Prevalence: "262 million people worldwide"},
}

type topicDetail struct {
	description     string
	symptoms        []string
	treatments      []string
	prevention      []string
	whenToSeeDoctor []string
}

var topicDetails = map[int]topicDetail{
	1: {
		description: "Diabetes is a metabolic disorder characterized by high blood sugar levels over a prolonged period. The disease occurs either when the pancreas doesn't produce enough insulin or when the body cannot effectively use the insulin it produces.",
		symptoms: []string{
			"Increased thirst and frequent urination",
			"Unexplained weight loss",
			"Fatigue and weakness",
			"Blurred vision",
			"Slow-healing sores or frequent infections",
		},
		treatments: []string{
			"Insulin therapy (Type 1 and some Type 2)",
			"Oral medications (Metformin, Sulfonylureas)",
			"Blood sugar monitoring",
			"Continuous glucose monitoring (CGM) devices",
		},
		prevention: []string{
			"Maintain healthy weight through diet and exercise",
			"Eat a balanced diet low in processed sugars",
			"Exercise regularly (at least 30 minutes daily)",
			"Get regular health screenings",
		},
		whenToSeeDoctor: []string{
			"Blood sugar levels consistently above 180 mg/dL",
			"Frequent infections or slow-healing wounds",
			"Vision changes or eye problems",
			"Numbness or tingling in extremities",
		},
	},
	2: {
		description: "Hypertension, or high blood pressure, is a common condition where the force of blood against artery walls is consistently too high. Often called the 'silent killer,' it typically has no symptoms but can lead to serious health complications if left untreated.",
		symptoms: []string{
			"Often no symptoms (silent condition)",
			"Severe headaches",
			"Nosebleeds",
			"Vision problems",
			"Irregular heartbeat",
		},
		treatments: []string{
			"Lifestyle modifications",
			"ACE inhibitors",
			"Calcium channel blockers",
			"Diuretics (water pills)",
			"Beta-blockers",
		},
		prevention: []string{
			"Maintain healthy weight",
			"Reduce sodium intake",
			"Exercise regularly",
			"Limit alcohol",
			"Regular blood pressure monitoring",
		},
		whenToSeeDoctor: []string{
			"Blood pressure consistently above 130/80",
			"Severe headache with confusion",
			"Chest pain",
			"Difficulty breathing",
			"Vision changes",
		},
	},
	3: {
		description: "Dengue is a mosquito-borne viral disease transmitted by Aedes mosquitoes. It causes flu-like symptoms and can develop into severe dengue (dengue hemorrhagic fever), which can be fatal. The disease is endemic in tropical and subtropical regions.",
		symptoms: []string{
			"High fever (104°F/40°C)",
			"Severe headache",
			"Pain behind the eyes",
			"Severe joint and muscle pain",
			"Skin rash (appears 2-5 days after fever)",
			"Mild bleeding (nose, gums)",
		},
		treatments: []string{
			"No specific antiviral treatment",
			"Supportive care and hydration",
			"Pain relievers (acetaminophen/paracetamol only)",
			"Avoid NSAIDs (aspirin, ibuprofen) - bleeding risk",
			"Hospitalization for severe cases",
		},
		prevention: []string{
			"Use mosquito repellent (DEET-based)",
			"Wear long sleeves and pants",
			"Use mosquito nets while sleeping",
			"Eliminate standing water around home",
		},
		whenToSeeDoctor: []string{
			"Severe abdominal pain",
			"Persistent vomiting",
			"Bleeding from nose or gums",
			"Rapid breathing",
			"Cold or clammy skin",
		},
	},
	4: {
		description: "COVID-19 is a contagious respiratory and systemic disease caused by the SARS-CoV-2 virus. The virus primarily spreads through respiratory droplets and can range from mild to severe illness.",
		symptoms: []string{
			"Fever or chills",
			"Cough (usually dry)",
			"Shortness of breath or difficulty breathing",
			"Fatigue",
			"Loss of taste or smell",
			"Sore throat",
		},
		treatments: []string{
			"Antiviral medications (Paxlovid, Remdesivir)",
			"Corticosteroids (dexamethasone)",
			"Oxygen therapy",
			"Supportive care",
		},
		prevention: []string{
			"Get vaccinated and boosted",
			"Wear masks in crowded indoor spaces",
			"Wash hands frequently (20 seconds)",
			"Improve indoor ventilation",
			"Stay home when sick",
		},
		whenToSeeDoctor: []string{
			"Trouble breathing or shortness of breath",
			"Persistent chest pain or pressure",
			"New confusion or inability to wake",
			"Oxygen saturation below 94%",
		},
	},
	5: {
		description: "Obesity is a complex chronic disease characterized by excessive body fat that increases the risk of other health conditions. It's defined as having a body mass index (BMI) of 30 or higher.",
		symptoms: []string{
			"Excess body fat, particularly around waist",
			"Shortness of breath",
			"Fatigue",
			"Joint and back pain",
			"Sleep problems including sleep apnea",
		},
		treatments: []string{
			"Dietary changes and nutrition counseling",
			"Physical activity program",
			"Behavioral therapy",
			"Weight-loss medications",
			"Bariatric surgery (severe cases)",
		},
		prevention: []string{
			"Maintain healthy eating habits from childhood",
			"Regular physical activity",
			"Monitor weight regularly",
			"Limit processed and high-calorie foods",
		},
		whenToSeeDoctor: []string{
			"BMI of 30 or higher",
			"Unable to lose weight despite efforts",
			"Weight-related health problems",
			"Rapid weight gain",
		},
	},
	6: {
		description: "Asthma is a chronic inflammatory disease of the airways characterized by variable and recurring symptoms, reversible airflow obstruction, and bronchospasm. It affects people of all ages but often starts in childhood.",
		symptoms: []string{
			"Shortness of breath",
			"Chest tightness or pain",
			"Wheezing when exhaling",
			"Coughing, especially at night or early morning",
			"Difficulty sleeping due to breathing problems",
		},
		treatments: []string{
			"Inhaled corticosteroids",
			"Long-acting beta agonists",
			"Quick-relief (rescue) inhalers",
			"Biologic therapies for severe asthma",
		},
		prevention: []string{
			"Avoid tobacco smoke",
			"Minimize allergen exposure",
			"Use HEPA filters",
			"Get appropriate vaccinations",
		},
		whenToSeeDoctor: []string{
			"Increasing shortness of breath or wheezing",
			"No improvement after using rescue inhaler",
			"Frequent need for rescue inhaler",
			"Symptoms disrupting sleep",
		},
	},
}

// Topics lists the catalog in display order.
func Topics() []domain.HealthTopic {
	out := make([]domain.HealthTopic, len(topics))
	copy(out, topics)
	return out
}

// Topic returns the full entry for one condition.
func Topic(id int) (domain.HealthTopicDetail, error) {
	detail, ok := topicDetails[id]
	if !ok {
		return domain.HealthTopicDetail{}, domain.ErrTopicNotFound(strconv.Itoa(id))
	}
	for _, t := range topics {
		if t.ID == id {
			return domain.HealthTopicDetail{
				HealthTopic:     t,
				Description:     detail.description,
				Symptoms:        detail.symptoms,
				Treatments:      detail.treatments,
				Prevention:      detail.prevention,
				WhenToSeeDoctor: detail.whenToSeeDoctor,
			}, nil
		}
	}
	return domain.HealthTopicDetail{}, domain.ErrTopicNotFound(strconv.Itoa(id))
}
