// Copyright (C) 2025 codexprt.dev <team@codexprt.dev>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package content

import (
	"github.com/codexprt-cs-guide-hackathon-project/codexprt/backend/models"
)

var roles = []models.Role{
	{Title: "Web Developer", Skills: []string{"HTML", "CSS", "JavaScript", "React", "Node.js", "TypeScript"}},
	{Title: "Data Scientist", Skills: []string{"Python", "Statistics", "Machine Learning", "Data Analysis", "SQL", "R"}},
	{Title: "Mobile App Developer", Skills: []string{"Java", "Kotlin", "Swift", "React Native", "Flutter"}},
	{Title: "Backend Developer", Skills: []string{"Node.js", "Express", "Python", "Django", "PostgreSQL", "MongoDB", "REST APIs"}},
	{Title: "Frontend Developer", Skills: []string{"HTML", "CSS", "JavaScript", "React", "Vue.js", "Angular"}},
	{Title: "DevOps Engineer", Skills: []string{"AWS", "Docker", "Kubernetes", "CI/CD", "Terraform", "Ansible"}},
	{Title: "Data Analyst", Skills: []string{"SQL", "Excel", "Tableau", "Data Visualization", "Power BI"}},
	{Title: "Software Engineer", Skills: []string{"C++", "Java", "Python", "Data Structures", "Algorithms", "System Design"}},
	{Title: "AI Engineer", Skills: []string{"Python", "TensorFlow", "Keras", "Deep Learning", "NLP", "Computer Vision"}},
	{Title: "Cloud Engineer", Skills: []string{"AWS", "Azure", "Google Cloud", "Cloud Computing", "Serverless", "IAM"}},
	{Title: "UX Designer", Skills: []string{"User Research", "Wireframing", "Prototyping", "UI Design", "Interaction Design"}},
	{Title: "Product Manager", Skills: []string{"Market Analysis", "Product Strategy", "Roadmapping", "Agile", "Stakeholder Management"}},
	{Title: "Security Engineer", Skills: []string{"Penetration Testing", "Vulnerability Assessment", "Security Auditing", "Cryptography", "Network Security"}},
	{Title: "Database Administrator", Skills: []string{"SQL Server", "MySQL", "PostgreSQL", "Database Tuning", "Backup and Recovery"}},
	{Title: "Network Engineer", Skills: []string{"Cisco", "Juniper", "Routing", "Switching", "Network Security"}},
	{Title: "Technical Writer", Skills: []string{"Technical Documentation", "API Documentation", "User Manuals", "Content Creation"}},
	{Title: "Project Manager", Skills: []string{"Project Planning", "Risk Management", "Budgeting", "Team Leadership"}},
	{Title: "Business Analyst", Skills: []string{"Requirements Gathering", "Process Modeling", "Data Analysis", "Stakeholder Analysis"}},
	{Title: "QA Engineer", Skills: []string{"Test Planning", "Test Execution", "Automation Testing", "Bug Reporting"}},
	{Title: "Technical Support Engineer", Skills: []string{"Troubleshooting", "Customer Service", "Technical Documentation"}},
	{Title: "Data Engineer", Skills: []string{"ETL", "Data Modeling", "Big Data", "Spark", "Hadoop"}},
	{Title: "Machine Learning Engineer", Skills: []string{"Scikit-learn", "TensorFlow", "PyTorch", "Model Deployment"}},
	{Title: "Full Stack Developer", Skills: []string{"React", "Node.js", "Express", "MongoDB", "SQL"}},
	{Title: "Game Developer", Skills: []string{"Unity", "C#", "Unreal Engine", "Game Design"}},
	{Title: "Blockchain Developer", Skills: []string{"Solidity", "Ethereum", "Web3.js", "Smart Contracts"}},
	{Title: "AR/VR Developer", Skills: []string{"ARKit", "ARCore", "Unity", "VR Development"}},
	{Title: "Embedded Systems Engineer", Skills: []string{"C", "C++", "Microcontrollers", "IoT"}},
	{Title: "Robotics Engineer", Skills: []string{"ROS", "Python", "Robotics", "AI"}},
	{Title: "Bioinformatician", Skills: []string{"Bioinformatics", "Genomics", "R", "Python"}},
	{Title: "Statistician", Skills: []string{"Statistics", "Data Analysis", "R", "SAS"}},
}
