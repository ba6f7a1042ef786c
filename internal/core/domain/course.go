package domain

// CourseTable maps a course name to its ordered discipline ids in the
// academic system. Read-only after load; reloads replace the whole table.
type CourseTable map[string][]int

// DefaultCourseTable is the built-in CED course mapping, used when no
// catalog file is configured.
func DefaultCourseTable() CourseTable {
	return CourseTable{
		"Excel PRO":                               {161, 197, 201},
		"Design Gráfico":                          {254, 751, 169},
		"Analista e Desenvolvimento de Sistemas":  {590, 176, 239, 203},
		"Administração":                           {129, 198, 156, 154},
		"Inglês Fluente":                          {263, 280, 281},
		"Inglês Kids":                             {266},
		"Informática Essencial":                   {130, 599, 161, 160, 162},
		"Operador de Micro":                       {130, 599, 160, 161, 162, 163, 222},
		"Especialista em Marketing & Vendas 360º": {123, 199, 202, 236, 264, 441, 734, 780, 828, 829},
		"Marketing Digital":                       {734, 236, 441, 199, 780},
		"Pacote Office":                           {160, 161, 162, 197, 201},
		"None":                                    {129, 198, 156, 154},
	}
}
