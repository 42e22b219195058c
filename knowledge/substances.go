package knowledge

import "pharmacy-chatbot-backend/models"

var substances = []models.InteractionProfile{
	{
		Name:              "aspirin",
		Interactions:      []string{"warfarin", "ibuprofen", "clopidogrel", "alcohol", "methotrexate"},
		Warning:           "Combining aspirin with anticoagulants or other NSAIDs may increase bleeding risk and stomach irritation.",
		Contraindications: []string{"active peptic ulcer", "bleeding disorders", "children under 16 with viral illness"},
		SideEffects:       []string{"stomach upset", "heartburn", "easy bruising", "ringing in the ears"},
		Dosage:            "300-900 mg every 4-6 hours for pain, maximum 4 g per day; 75-100 mg daily for cardiovascular protection",
		Category:          "NSAID / antiplatelet",
		Pregnancy:         "Avoid in the third trimester; low dose only under medical supervision.",
		Breastfeeding:     "Not recommended; occasional low doses are unlikely to harm.",
	},
	{
		Name:              "warfarin",
		Interactions:      []string{"aspirin", "ibuprofen", "paracetamol", "alcohol", "grapefruit juice", "simvastatin", "amoxicillin"},
		Warning:           "Warfarin has a narrow therapeutic window; many drugs and foods increase bleeding risk or reduce its effect.",
		Contraindications: []string{"active bleeding", "severe liver disease", "pregnancy"},
		SideEffects:       []string{"bleeding gums", "nosebleeds", "bruising", "blood in urine"},
		Dosage:            "Individualised by INR monitoring, typically 2-10 mg once daily",
		Category:          "anticoagulant",
		Pregnancy:         "Contraindicated; causes birth defects.",
		Breastfeeding:     "Generally compatible; monitor the infant for bruising.",
	},
	{
		Name:              "ibuprofen",
		Interactions:      []string{"aspirin", "warfarin", "lisinopril", "alcohol", "methotrexate"},
		Warning:           "Ibuprofen can increase bleeding risk with anticoagulants and reduce the effect of blood pressure medicines.",
		Contraindications: []string{"history of GI bleeding", "severe heart failure", "severe kidney impairment"},
		SideEffects:       []string{"indigestion", "nausea", "headache", "fluid retention"},
		Dosage:            "200-400 mg every 4-6 hours with food, maximum 1200 mg per day without prescription",
		Category:          "NSAID",
		Pregnancy:         "Avoid, especially after 20 weeks.",
		Breastfeeding:     "Compatible at normal doses.",
	},
	{
		Name:              "paracetamol",
		Interactions:      []string{"warfarin", "alcohol"},
		Warning:           "Regular paracetamol may enhance the effect of warfarin; alcohol raises the risk of liver damage.",
		Contraindications: []string{"severe liver disease"},
		SideEffects:       []string{"rare skin rash", "liver damage in overdose"},
		Dosage:            "500-1000 mg every 4-6 hours, maximum 4 g per day",
		Category:          "analgesic / antipyretic",
		Pregnancy:         "Considered safe at recommended doses.",
		Breastfeeding:     "Compatible.",
	},
	{
		Name:              "metformin",
		Interactions:      []string{"alcohol", "contrast dye"},
		Warning:           "Alcohol with metformin increases the risk of lactic acidosis.",
		Contraindications: []string{"severe kidney impairment", "diabetic ketoacidosis"},
		SideEffects:       []string{"nausea", "diarrhoea", "metallic taste", "vitamin B12 deficiency"},
		Dosage:            "500 mg once or twice daily with meals, titrated up to 2 g per day",
		Category:          "antidiabetic (biguanide)",
		Pregnancy:         "May be used under supervision.",
		Breastfeeding:     "Compatible.",
	},
	{
		Name:              "lisinopril",
		Interactions:      []string{"ibuprofen", "potassium", "spironolactone"},
		Warning:           "NSAIDs reduce lisinopril's effect; potassium supplements can cause dangerous hyperkalaemia.",
		Contraindications: []string{"history of angioedema", "pregnancy"},
		SideEffects:       []string{"dry cough", "dizziness", "headache", "raised potassium"},
		Dosage:            "10 mg once daily, maintenance 20-40 mg",
		Category:          "ACE inhibitor",
		Pregnancy:         "Contraindicated.",
		Breastfeeding:     "Not recommended.",
	},
	{
		Name:              "simvastatin",
		Interactions:      []string{"grapefruit juice", "clarithromycin", "warfarin", "amlodipine"},
		Warning:           "Grapefruit juice and some antibiotics raise simvastatin levels and the risk of muscle damage.",
		Contraindications: []string{"active liver disease", "pregnancy"},
		SideEffects:       []string{"muscle pain", "constipation", "headache"},
		Dosage:            "10-40 mg once daily in the evening",
		Category:          "statin",
		Pregnancy:         "Contraindicated.",
		Breastfeeding:     "Contraindicated.",
	},
	{
		Name:              "amoxicillin",
		Interactions:      []string{"warfarin", "methotrexate"},
		Warning:           "Amoxicillin may increase the effect of warfarin; monitor INR.",
		Contraindications: []string{"penicillin allergy"},
		SideEffects:       []string{"diarrhoea", "nausea", "skin rash"},
		Dosage:            "250-500 mg every 8 hours for 5-7 days",
		Category:          "antibiotic (penicillin)",
		Pregnancy:         "Considered safe.",
		Breastfeeding:     "Compatible.",
	},
	{
		Name:              "omeprazole",
		Interactions:      []string{"clopidogrel"},
		Warning:           "Omeprazole reduces the antiplatelet effect of clopidogrel.",
		Contraindications: []string{"hypersensitivity to proton pump inhibitors"},
		SideEffects:       []string{"headache", "abdominal pain", "diarrhoea"},
		Dosage:            "20-40 mg once daily before breakfast",
		Category:          "proton pump inhibitor",
		Pregnancy:         "Can be used when needed.",
		Breastfeeding:     "Compatible.",
	},
	{
		Name:              "clopidogrel",
		Interactions:      []string{"aspirin", "omeprazole", "warfarin"},
		Warning:           "Clopidogrel with other blood thinners significantly raises bleeding risk.",
		Contraindications: []string{"active bleeding", "severe liver impairment"},
		SideEffects:       []string{"bruising", "bleeding", "diarrhoea"},
		Dosage:            "75 mg once daily",
		Category:          "antiplatelet",
		Pregnancy:         "Use only if clearly needed.",
		Breastfeeding:     "Not recommended.",
	},
	{
		Name:              "sildenafil",
		Interactions:      []string{"nitroglycerin", "alcohol", "tadalafil"},
		Warning:           "Sildenafil with nitrates can cause a life-threatening drop in blood pressure.",
		Contraindications: []string{"nitrate therapy", "recent stroke or heart attack", "severe hypotension"},
		SideEffects:       []string{"headache", "flushing", "indigestion", "visual disturbance"},
		Dosage:            "50 mg about one hour before activity, maximum once daily",
		Category:          "PDE5 inhibitor",
		Pregnancy:         "Not indicated.",
		Breastfeeding:     "Not indicated.",
	},
	{
		Name:              "nitroglycerin",
		Interactions:      []string{"sildenafil", "tadalafil", "alcohol"},
		Warning:           "Nitrates with PDE5 inhibitors cause severe hypotension.",
		Contraindications: []string{"PDE5 inhibitor use", "severe anaemia"},
		SideEffects:       []string{"headache", "dizziness", "flushing"},
		Dosage:            "0.3-0.6 mg sublingually at onset of angina, may repeat twice at 5 minute intervals",
		Category:          "nitrate vasodilator",
		Pregnancy:         "Use only if clearly needed.",
		Breastfeeding:     "Use with caution.",
	},
	{
		Name:              "levothyroxine",
		Interactions:      []string{"calcium", "iron", "omeprazole"},
		Warning:           "Calcium and iron reduce levothyroxine absorption; separate doses by 4 hours.",
		Contraindications: []string{"untreated adrenal insufficiency", "thyrotoxicosis"},
		SideEffects:       []string{"palpitations", "insomnia", "weight loss when over-replaced"},
		Dosage:            "25-200 mcg once daily on an empty stomach",
		Category:          "thyroid hormone",
		Pregnancy:         "Safe; dose often needs increasing.",
		Breastfeeding:     "Compatible.",
	},
	{
		Name:              "montelukast",
		Interactions:      []string{"phenobarbital"},
		Warning:           "Watch for mood or behaviour changes while taking montelukast.",
		Contraindications: []string{"hypersensitivity to montelukast"},
		SideEffects:       []string{"headache", "abdominal pain", "sleep disturbance", "mood changes"},
		Dosage:            "10 mg once daily in the evening",
		Category:          "leukotriene receptor antagonist",
		Pregnancy:         "May be used if clearly needed.",
		Breastfeeding:     "Use with caution.",
	},
	{
		Name:              "salbutamol",
		Interactions:      []string{"propranolol"},
		Warning:           "Non-selective beta blockers block the bronchodilating effect of salbutamol.",
		Contraindications: []string{"hypersensitivity to salbutamol"},
		SideEffects:       []string{"tremor", "palpitations", "headache"},
		Dosage:            "100-200 mcg inhaled as needed, up to four times daily",
		Category:          "short-acting beta agonist",
		Pregnancy:         "Considered safe.",
		Breastfeeding:     "Compatible.",
	},
	{
		Name:              "alcohol",
		Interactions:      []string{"paracetamol", "metformin", "warfarin", "aspirin", "ibuprofen", "sildenafil"},
		Warning:           "Alcohol increases sedation, liver strain and bleeding risk with many medicines.",
		Contraindications: []string{"liver disease", "pregnancy"},
		SideEffects:       []string{"drowsiness", "dehydration", "stomach irritation"},
		Dosage:            "Not applicable; limit intake while on medication",
		Category:          "consumable",
		Pregnancy:         "Avoid entirely.",
		Breastfeeding:     "Avoid.",
	},
	{
		Name:              "grapefruit juice",
		Interactions:      []string{"simvastatin", "warfarin", "amlodipine"},
		Warning:           "Grapefruit juice blocks the enzyme that breaks down several drugs, raising their blood levels.",
		Contraindications: []string{"therapy with CYP3A4-metabolised statins"},
		SideEffects:       []string{"raised drug levels of interacting medicines"},
		Dosage:            "Not applicable; avoid with interacting medicines",
		Category:          "consumable",
		Pregnancy:         "No specific concern.",
		Breastfeeding:     "No specific concern.",
	},
	{
		Name:              "calcium",
		Interactions:      []string{"levothyroxine", "iron"},
		Warning:           "Calcium supplements reduce absorption of thyroid hormone and iron.",
		Contraindications: []string{"hypercalcaemia", "kidney stones"},
		SideEffects:       []string{"constipation", "bloating"},
		Dosage:            "500-1200 mg elemental calcium daily in divided doses",
		Category:          "mineral supplement",
		Pregnancy:         "Safe at recommended doses.",
		Breastfeeding:     "Compatible.",
	},
}

var conditions = []models.ConditionProfile{
	{
		Name:          "diabetes",
		Symptoms:      []string{"increased thirst", "frequent urination", "fatigue", "blurred vision", "slow-healing wounds"},
		Treatments:    []string{"metformin", "insulin therapy", "diet control", "regular exercise"},
		Complications: []string{"neuropathy", "kidney damage", "retinopathy", "cardiovascular disease"},
		Prevention:    []string{"healthy weight", "balanced diet", "physical activity", "regular screening"},
	},
	{
		Name:          "hypertension",
		Symptoms:      []string{"often none", "headache", "shortness of breath", "nosebleeds"},
		Treatments:    []string{"lisinopril", "amlodipine", "reduced salt intake", "exercise"},
		Complications: []string{"heart attack", "stroke", "kidney failure"},
		Prevention:    []string{"low-salt diet", "limit alcohol", "regular exercise", "stress management"},
	},
	{
		Name:          "asthma",
		Symptoms:      []string{"wheezing", "shortness of breath", "chest tightness", "night-time coughing"},
		Treatments:    []string{"salbutamol inhaler", "inhaled corticosteroids", "montelukast"},
		Complications: []string{"severe asthma attacks", "airway remodelling"},
		Prevention:    []string{"avoid triggers", "use preventer inhaler", "annual flu vaccine"},
	},
	{
		Name:          "migraine",
		Symptoms:      []string{"throbbing headache", "nausea", "sensitivity to light", "visual aura"},
		Treatments:    []string{"paracetamol", "ibuprofen", "triptans", "rest in a dark room"},
		Complications: []string{"medication-overuse headache", "chronic migraine"},
		Prevention:    []string{"regular sleep", "identify food triggers", "stay hydrated"},
	},
	{
		Name:          "common cold",
		Symptoms:      []string{"runny nose", "sore throat", "sneezing", "mild fever"},
		Treatments:    []string{"rest", "fluids", "paracetamol", "saline nasal spray"},
		Complications: []string{"sinusitis", "ear infection"},
		Prevention:    []string{"hand washing", "avoid close contact with sick people"},
	},
	{
		Name:          "influenza",
		Symptoms:      []string{"high fever", "muscle aches", "chills", "dry cough", "fatigue"},
		Treatments:    []string{"rest", "fluids", "paracetamol", "antivirals within 48 hours"},
		Complications: []string{"pneumonia", "bronchitis", "worsening of chronic conditions"},
		Prevention:    []string{"annual flu vaccine", "hand hygiene"},
	},
	{
		Name:          "arthritis",
		Symptoms:      []string{"joint pain", "stiffness", "swelling", "reduced range of motion"},
		Treatments:    []string{"ibuprofen", "physiotherapy", "weight management", "disease-modifying drugs"},
		Complications: []string{"joint deformity", "reduced mobility"},
		Prevention:    []string{"healthy weight", "low-impact exercise", "joint protection"},
	},
	{
		Name:          "gastritis",
		Symptoms:      []string{"upper abdominal pain", "bloating", "nausea", "indigestion"},
		Treatments:    []string{"omeprazole", "antacids", "avoid NSAIDs and alcohol"},
		Complications: []string{"stomach ulcers", "stomach bleeding"},
		Prevention:    []string{"limit alcohol", "avoid long-term NSAID use", "treat H. pylori"},
	},
	{
		Name:          "anemia",
		Symptoms:      []string{"fatigue", "pale skin", "shortness of breath", "dizziness"},
		Treatments:    []string{"iron supplements", "vitamin B12", "dietary changes"},
		Complications: []string{"heart problems", "pregnancy complications"},
		Prevention:    []string{"iron-rich diet", "vitamin C with meals"},
	},
}
